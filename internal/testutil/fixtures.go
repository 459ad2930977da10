package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"obralog/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHourlyProject creates an hourly project with fixed rates.
func CreateTestHourlyProject(t *testing.T, db *gorm.DB, userID string) *models.Project {
	t.Helper()

	project := &models.Project{
		UserID:       userID,
		Name:         fmt.Sprintf("Hourly Project %d", nextID()),
		Type:         models.ProjectTypeHourly,
		OfficialRate: 25,
		WorkerRate:   18,
		Currency:     "EUR",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestFixedProject creates a fixed-price project that allows extra work.
func CreateTestFixedProject(t *testing.T, db *gorm.DB, userID string, budget float64) *models.Project {
	t.Helper()

	project := &models.Project{
		UserID:         userID,
		Name:           fmt.Sprintf("Fixed Project %d", nextID()),
		Type:           models.ProjectTypeFixed,
		OfficialRate:   30,
		WorkerRate:     20,
		BudgetAmount:   models.Amount(budget),
		AllowExtraWork: true,
		Currency:       "EUR",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestReport creates a plain (non-extra) report for the given project
// with the stored week number derived from the date.
func CreateTestReport(t *testing.T, db *gorm.DB, userID, projectID string, reportDate time.Time) *models.Report {
	t.Helper()

	_, week := reportDate.ISOWeek()
	report := &models.Report{
		UserID:     userID,
		ProjectID:  projectID,
		ReportDate: reportDate,
		WeekNumber: week,
	}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to create test report: %v", err)
	}
	return report
}
