package main

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lagos_eoi_backend/internals/configs"
	"lagos_eoi_backend/internals/constants"
	database "lagos_eoi_backend/internals/databases"
	admissionModel "lagos_eoi_backend/internals/features/admissions/model"
	posterModel "lagos_eoi_backend/internals/features/posters/model"
	settingModel "lagos_eoi_backend/internals/features/settings/model"
	userHelper "lagos_eoi_backend/internals/features/users/helper"
	userModel "lagos_eoi_backend/internals/features/users/model"
)

// One-time database seed: default admin, site copy, placeholder posters
// and, when a roster file is passed as the first argument, the MAIN /
// SUPPLEMENTARY admission lists.
//
// Usage: seeder [admissions.json]
func main() {
	configs.LoadEnv()
	database.ConnectDB()
	db := database.DB

	log.Println("🌱 Seeding database...")

	seedAdmin(db)
	seedSettings(db)
	seedPosters(db)

	if len(os.Args) > 1 {
		seedAdmissions(db, os.Args[1])
	}

	log.Println("🎉 Seeding completed.")
}

func seedAdmin(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_SEED_EMAIL", "admin@ossg.lagos.gov.ng")
	password := configs.GetEnv("ADMIN_SEED_PASSWORD", "Change@123")

	hashed, err := userHelper.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ hash admin password: %v", err)
	}

	admin := userModel.UserModel{
		UserEmail:    email,
		UserPassword: hashed,
		UserName:     "OSSG Administrator",
		UserRole:     "admin",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}},
		DoNothing: true,
	}).Create(&admin).Error; err != nil {
		log.Fatalf("❌ seed admin: %v", err)
	}
	log.Printf("✅ Admin user ready: %s", email)
}

func seedSettings(db *gorm.DB) {
	defaults := map[string]string{
		"governor_notice":   "Governor Babajide Sanwo-Olu urges Lagos youths to urgently register interest online for opportunities in the Nigerian Military.",
		"department_name":   "Office of the Secretary to the State Government (OSSG) – Cabinet Office",
		"office_address":    "Cabinet Office Block 1, The Secretariat, Alausa, Ikeja",
		"recruitment_portal": "recruitment.army.mil.ng",
		"disclaimer":        "This portal is for Expression of Interest and information updates. Final recruitment is conducted via official military channels.",
		"about_text":        "This initiative is supported by the Lagos State Government and coordinated through OSSG – Cabinet Office. This is an Expression of Interest (EOI) only. Screening dates and venues are published via official updates. No fees are charged by this portal.",
		"next_steps_text":   "You may be contacted by OSSG/Cabinet Office representatives for guidance and screening updates.",
		"homepage_banner":   "ATTENTION! ATTENTION!! ATTENTION!!!",
		"contact_persons":   `[{"name":"Ojedokun","phone":"08033442421","role":"Coordinator"},{"name":"Aisha","phone":"09160041000","role":"Assistant"},{"name":"Afolayan","phone":"09160042000","role":"Support"}]`,
	}

	for key, value := range defaults {
		setting := settingModel.SiteSettingModel{
			SiteSettingKey:   key,
			SiteSettingValue: value,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_setting_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"site_setting_value": value}),
		}).Create(&setting).Error; err != nil {
			log.Fatalf("❌ seed setting %s: %v", key, err)
		}
	}
	log.Println("✅ Site settings ready")
}

func seedPosters(db *gorm.DB) {
	var count int64
	if err := db.Model(&posterModel.PosterModel{}).Count(&count).Error; err != nil {
		log.Fatalf("❌ count posters: %v", err)
	}
	if count > 0 {
		return
	}

	caption1 := "Register your interest to join the Nigerian Military"
	caption2 := "OSSG invites Lagos indigenes to express interest"
	caption3 := "Opportunities in Army, Navy, Air Force & Cyber Defence"
	posters := []posterModel.PosterModel{
		{PosterTitle: "Lagos Youth Military Recruitment 2025", PosterCaption: &caption1, PosterImageURL: "/posters/poster1.jpg", PosterSortOrder: 1, PosterActive: true},
		{PosterTitle: "Governor Sanwo-Olu Call to Action", PosterCaption: &caption2, PosterImageURL: "/posters/poster2.jpg", PosterSortOrder: 2, PosterActive: true},
		{PosterTitle: "Join Nigerian Armed Forces", PosterCaption: &caption3, PosterImageURL: "/posters/poster3.jpg", PosterSortOrder: 3, PosterActive: true},
	}
	if err := db.Create(&posters).Error; err != nil {
		log.Fatalf("❌ seed posters: %v", err)
	}
	log.Println("✅ Placeholder posters created")
}

type rosterEntry struct {
	ApplicationNo string `json:"applicationNo"`
	Surname       string `json:"surname"`
	FirstName     string `json:"firstName"`
	OtherName     string `json:"otherName"`
}

type rosterFile struct {
	Main          []rosterEntry `json:"main"`
	Supplementary []rosterEntry `json:"supplementary"`
}

func seedAdmissions(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ read roster file: %v", err)
	}
	var roster rosterFile
	if err := json.Unmarshal(raw, &roster); err != nil {
		log.Fatalf("❌ parse roster file: %v", err)
	}

	// rosters are replaced wholesale on reseed
	if err := db.Where("1 = 1").Delete(&admissionModel.ArmyAdmissionModel{}).Error; err != nil {
		log.Fatalf("❌ clear admissions: %v", err)
	}

	insert := func(entries []rosterEntry, listType string) {
		for _, e := range entries {
			var other *string
			if e.OtherName != "" {
				v := e.OtherName
				other = &v
			}
			row := admissionModel.ArmyAdmissionModel{
				ArmyAdmissionApplicationNo: e.ApplicationNo,
				ArmyAdmissionSurname:       e.Surname,
				ArmyAdmissionFirstName:     e.FirstName,
				ArmyAdmissionOtherName:     other,
				ArmyAdmissionListType:      listType,
			}
			if err := db.Create(&row).Error; err != nil {
				log.Fatalf("❌ seed admission %s: %v", e.ApplicationNo, err)
			}
		}
	}
	insert(roster.Main, constants.ListTypeMain)
	insert(roster.Supplementary, constants.ListTypeSupplementary)
	log.Printf("✅ Admissions seeded: %d main, %d supplementary", len(roster.Main), len(roster.Supplementary))
}
