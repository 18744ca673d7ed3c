package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// RoomRepository handles room catalog data access
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// List lists all rooms ordered by room number
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).
		Order("room_no ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetByRoomID gets a room by its canonical identifier or display number
func (r *RoomRepository) GetByRoomID(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ? OR room_no = ?", roomID, roomID).
		First(&room).Error
	return &room, err
}

// Count counts rooms
func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&total).Error
	return total, err
}
