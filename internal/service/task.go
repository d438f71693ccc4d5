package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/pkg/logger"
)

// TaskService orchestrates task creation and report generation. The
// cache is optional; when nil reports are always computed from the
// store.
type TaskService struct {
	tasks repository.TaskStore
	cache ReportCache
}

func NewTaskService(tasks repository.TaskStore, cache ReportCache) *TaskService {
	return &TaskService{tasks: tasks, cache: cache}
}

// Create maps the request to a task entity and persists it. The type
// defaults to daily when omitted; completion flag and creation time are
// server-assigned. The caller's existence is not pre-checked, a foreign
// key violation surfaces from the store.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest) (bool, error) {
	taskType := models.TaskType(req.Type)
	if req.Type == 0 {
		taskType = models.TaskTypeDaily
	}

	task := &models.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: false,
		Type:        taskType,
		CreatedAt:   time.Now().UTC(),
	}
	if req.DueDate != nil {
		task.DueDate = sql.NullTime{Time: *req.DueDate, Valid: true}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return false, err
	}

	s.invalidateReport(ctx)

	logger.AuditLogger.Info("Task created",
		zap.Int("task_id", task.ID),
		zap.Int("user_id", task.UserID),
		zap.String("type", task.Type.String()),
	)
	return true, nil
}

// Report fetches all tasks, groups them by type and aggregates each
// group. Only types that actually have tasks appear, sorted ascending
// by type. The finished report is cached for an hour.
func (s *TaskService) Report(ctx context.Context) ([]models.TaskReport, error) {
	if cached := s.cachedReport(ctx); cached != nil {
		return cached, nil
	}

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[models.TaskType][]models.Task{}
	for _, t := range tasks {
		groups[t.Type] = append(groups[t.Type], t)
	}

	types := make([]models.TaskType, 0, len(groups))
	for taskType := range groups {
		types = append(types, taskType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	report := []models.TaskReport{}
	for _, taskType := range types {
		group := groups[taskType]
		total := len(group)
		completed := 0
		responses := make([]models.TaskResponse, 0, total)
		for _, t := range group {
			if t.IsCompleted {
				completed++
			}
			responses = append(responses, toTaskResponse(t))
		}

		report = append(report, models.TaskReport{
			Type:           taskType,
			TotalTasks:     total,
			CompletedTasks: completed,
			PendingTasks:   total - completed,
			CompletionRate: completionRate(completed, total),
			Tasks:          responses,
		})
	}

	s.storeReport(ctx, report)
	return report, nil
}

// completionRate is the completed percentage rounded to two decimals,
// defined as 0 when there are no tasks.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

func toTaskResponse(t models.Task) models.TaskResponse {
	resp := models.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		IsCompleted: t.IsCompleted,
		Type:        t.Type,
		UserID:      strconv.Itoa(t.UserID),
	}
	if t.DueDate.Valid {
		due := t.DueDate.Time
		resp.DueDate = &due
	}
	if t.CompletedAt.Valid {
		completedAt := t.CompletedAt.Time
		resp.CompletedAt = &completedAt
	}
	return resp
}

func (s *TaskService) cachedReport(ctx context.Context) []models.TaskReport {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx)
	if err != nil {
		return nil
	}
	var report []models.TaskReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return report
}

func (s *TaskService) storeReport(ctx context.Context, report []models.TaskReport) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, data, reportCacheTTL); err != nil {
		logger.ErrorLogger.Error("Error caching report", zap.Error(err))
	}
}

func (s *TaskService) invalidateReport(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx); err != nil {
		logger.ErrorLogger.Error("Error invalidating report cache", zap.Error(err))
	}
}
