package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/implementation"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// seedFile mirrors the structure of gju_data.json.
type seedFile struct {
	Courses []struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Hours int    `json:"hours"`
		Desc  string `json:"desc"`
	} `json:"courses"`
	Prerequisites []struct {
		Course string `json:"course"`
		Prereq string `json:"prereq"`
	} `json:"prerequisites"`
	Instructors []struct {
		Name           string `json:"name"`
		Title          string `json:"title"`
		OfficeLocation string `json:"office_location"`
		Phone          string `json:"phone"`
		Email          string `json:"email"`
		Status         string `json:"status"`
	} `json:"instructors"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	path := "gju_data.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	color.Cyan("🚀 Seeding catalog from %s\n", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read %s: %v", path, err)
		os.Exit(1)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		color.Red("Failed to parse %s: %v", path, err)
		os.Exit(1)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		color.Yellow("\n1. Loading courses")
		if err := tx.Exec("TRUNCATE TABLE courses CASCADE").Error; err != nil {
			return err
		}
		for _, c := range data.Courses {
			course := model.Course{
				Code:        cleanCode(c.Code),
				Name:        c.Name,
				CreditHours: c.Hours,
				Description: c.Desc,
			}
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
		}
		color.Green("Loaded %d courses", len(data.Courses))

		color.Yellow("\n2. Loading prerequisites")
		if err := tx.Exec("TRUNCATE TABLE prerequisites").Error; err != nil {
			return err
		}
		for _, p := range data.Prerequisites {
			prereq := model.Prerequisite{
				CourseCode:       cleanCode(p.Course),
				PrerequisiteCode: cleanCode(p.Prereq),
			}
			if err := tx.Create(&prereq).Error; err != nil {
				return err
			}
		}
		color.Green("Loaded %d prerequisites", len(data.Prerequisites))

		color.Yellow("\n3. Loading instructors")
		if err := tx.Exec("TRUNCATE TABLE instructors").Error; err != nil {
			return err
		}
		for _, i := range data.Instructors {
			instructor := model.Instructor{
				Name:           i.Name,
				Title:          i.Title,
				OfficeLocation: i.OfficeLocation,
				Phone:          i.Phone,
				Email:          i.Email,
				Status:         i.Status,
			}
			if err := tx.Create(&instructor).Error; err != nil {
				return err
			}
		}
		color.Green("Loaded %d instructors", len(data.Instructors))

		color.Yellow("\n4. Loading track requirements")
		if err := tx.Exec("TRUNCATE TABLE track_requirements").Error; err != nil {
			return err
		}
		count, err := seedTrackRequirements(tx)
		if err != nil {
			return err
		}
		color.Green("Loaded %d track requirement rows", count)

		return nil
	})
	if err != nil {
		color.Red("\n❌ Seeding failed: %v", err)
		os.Exit(1)
	}

	// Read the count back through the repository as a load check.
	total, err := implementation.NewCourseRepository(db).Count(context.Background())
	if err != nil {
		color.Red("\n❌ Post-load verification failed: %v", err)
		os.Exit(1)
	}
	if total != int64(len(data.Courses)) {
		color.Red("\n❌ Catalog has %d courses, expected %d", total, len(data.Courses))
		os.Exit(1)
	}

	color.Green("\n✅ All data has been successfully loaded! (%d courses in catalog)", total)
}

// cleanCode strips whitespace so "CS 116" and "CS116" land on the same
// row.
func cleanCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, " ", ""))
}

// seedTrackRequirements materializes the faculty track configuration
// into the track_requirements table.
func seedTrackRequirements(tx *gorm.DB) (int, error) {
	attrs := advisor.DefaultTrackAttributes()

	var rows []model.TrackRequirement
	for code := range attrs.CommonCompulsory {
		rows = append(rows, model.TrackRequirement{CourseCode: code, Kind: entity.TrackRequirementCommon})
	}
	for track, reqs := range attrs.Tracks {
		for code := range reqs.Compulsory {
			rows = append(rows, model.TrackRequirement{Track: track, CourseCode: code, Kind: entity.TrackRequirementCompulsory})
		}
		for code := range reqs.Electives {
			rows = append(rows, model.TrackRequirement{Track: track, CourseCode: code, Kind: entity.TrackRequirementElective})
		}
	}

	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
