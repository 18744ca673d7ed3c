package config

import (
	"log"

	"rentmate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedRooms seeds the fixed room catalog. Rooms are reference data: the
// building does not grow, so the list lives here rather than in an admin UI.
func SeedRooms(db *gorm.DB) error {
	rooms := []models.Room{
		{RoomNo: "101", RoomID: "G1", KeyNumber: "K-101", EBServiceNo: "04512077001", EBAccountNo: "112077001"},
		{RoomNo: "102", RoomID: "G2", KeyNumber: "K-102", EBServiceNo: "04512077002", EBAccountNo: "112077002"},
		{RoomNo: "103", RoomID: "G3", KeyNumber: "K-103", EBServiceNo: "04512077003", EBAccountNo: "112077003"},
		{RoomNo: "201", RoomID: "F1", KeyNumber: "K-201", EBServiceNo: "04512077004", EBAccountNo: "112077004"},
		{RoomNo: "202", RoomID: "F2", KeyNumber: "K-202", EBServiceNo: "04512077005", EBAccountNo: "112077005"},
		{RoomNo: "203", RoomID: "F3", KeyNumber: "K-203", EBServiceNo: "04512077006", EBAccountNo: "112077006"},
		{RoomNo: "204", RoomID: "F4", KeyNumber: "K-204", EBServiceNo: "04512077007", EBAccountNo: "112077007"},
		{RoomNo: "205", RoomID: "F5", KeyNumber: "K-205", EBServiceNo: "04512077008", EBAccountNo: "112077008"},
		{RoomNo: "301", RoomID: "S1", KeyNumber: "K-301", EBServiceNo: "04512077009", EBAccountNo: "112077009"},
		{RoomNo: "302", RoomID: "S2", KeyNumber: "K-302", EBServiceNo: "04512077010", EBAccountNo: "112077010"},
	}

	for _, room := range rooms {
		var existing models.Room
		if err := db.Where("room_no = ?", room.RoomNo).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&room).Error; err != nil {
					return err
				}
				log.Printf("   Created room: %s (%s)", room.RoomNo, room.RoomID)
			}
		}
	}

	log.Println("✅ Room catalog seeded successfully")
	return nil
}
