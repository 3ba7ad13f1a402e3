package dashboard

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/database"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/services"
)

// GetDashboardStatsAPI returns the top-level treasury balance.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}
	return c.JSON(stats)
}

func loadDebtorsReport(db *sql.DB, activityID string) ([]*models.ActivityReport, error) {
	students, err := database.GetActiveStudents(db)
	if err != nil {
		return nil, err
	}
	activities, err := database.GetActiveFeeActivities(db)
	if err != nil {
		return nil, err
	}
	payments, err := database.GetAllPayments(db)
	if err != nil {
		return nil, err
	}

	report := BuildDebtorsReport(students, activities, payments)

	if activityID != "" {
		filtered := []*models.ActivityReport{}
		for _, entry := range report {
			if entry.Activity.ID == activityID {
				filtered = append(filtered, entry)
			}
		}
		report = filtered
	}
	return report, nil
}

// GetDebtorsAPI returns the debtor report for every active fee-requiring
// activity, or for a single one when ?activity_id= is given.
func GetDebtorsAPI(c *fiber.Ctx) error {
	report, err := loadDebtorsReport(config.GetDB(), c.Query("activity_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build debtors report"})
	}
	return c.JSON(report)
}

// ExportDebtorsAPI downloads the debtor report as a spreadsheet.
func ExportDebtorsAPI(c *fiber.Ctx) error {
	report, err := loadDebtorsReport(config.GetDB(), c.Query("activity_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build debtors report"})
	}

	workbook, err := services.BuildDebtorsWorkbook(report)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write spreadsheet"})
	}

	filename := fmt.Sprintf("deudores-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
