package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Room Catalog (seeded once, read-only reference data)
// ============================================================

// Room represents the rooms table
type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomNo      string    `gorm:"uniqueIndex;size:10;not null" json:"room_no"`
	RoomID      string    `gorm:"column:room_id;uniqueIndex;size:10;not null" json:"room_id"`
	KeyNumber   string    `gorm:"size:20" json:"key_number"`
	EBServiceNo string    `gorm:"column:eb_service_no;size:30" json:"eb_service_no"`
	EBAccountNo string    `gorm:"column:eb_account_no;size:30" json:"eb_account_no"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// ============================================================
// Occupancy (the mutable tenancy/billing record bound to a room)
// ============================================================

// Occupancy status values
const (
	StatusOccupied    = "Occupied"
	StatusVacant      = "Vacant"
	StatusMaintenance = "Maintenance"
)

// Payment status values per (room, month). Absence of a month entry means
// no history yet ("None").
const (
	PaymentNone     = ""
	PaymentPending  = "Pending"
	PaymentRentOnly = "Rent Only"
	PaymentPaid     = "Paid"
)

// Month-keyed billing maps, stored as JSON documents. Keys are produced
// solely by the billing calendar ("2024-Mar") and are opaque everywhere else.
type (
	StatusMap  map[string]string
	TotalMap   map[string]int
	ReadingMap map[string]float64
	ResetMap   map[string]bool
)

// Property represents the properties table (one occupancy record per room)
type Property struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	RoomID            string     `gorm:"column:room_id;size:10;index" json:"room_id"`
	RoomNo            string     `gorm:"size:10;index" json:"room_no"`
	Status            string     `gorm:"size:20;not null;default:'Vacant'" json:"status"`
	Tenant            string     `gorm:"size:100" json:"tenant"`
	Phone             string     `gorm:"size:20" json:"phone"`
	Email             string     `gorm:"size:100" json:"email"`
	JoinDate          *time.Time `gorm:"type:date" json:"join_date"`
	Rent              int        `gorm:"not null;default:0" json:"rent"`
	Advance           int        `gorm:"not null;default:0" json:"advance"`
	WaterRate         *float64   `json:"water_rate"`
	EvictionConfirmed bool       `gorm:"default:false" json:"eviction_confirmed"`

	PaymentHistory  StatusMap  `gorm:"serializer:json" json:"payment_history"`
	PaymentTotals   TotalMap   `gorm:"serializer:json" json:"payment_totals"`
	WaterReadings   ReadingMap `gorm:"serializer:json" json:"water_readings"`
	WaterMeterReset ResetMap   `gorm:"serializer:json" json:"water_meter_reset"`

	// ArchivedTenant is the frozen snapshot of the previous occupant,
	// written at turnover and read-only thereafter.
	ArchivedTenant *TenantSnapshot `gorm:"serializer:json" json:"archived_tenant,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

// TenantSnapshot carries the previous occupant's billing facts in the same
// shape as the live record, so months before the current tenancy can still
// be resolved.
type TenantSnapshot struct {
	Tenant          string     `json:"tenant"`
	Phone           string     `json:"phone,omitempty"`
	Rent            int        `json:"rent"`
	JoinDate        *time.Time `json:"join_date,omitempty"`
	VacatedAt       *time.Time `json:"vacated_at,omitempty"`
	PaymentHistory  StatusMap  `json:"payment_history"`
	PaymentTotals   TotalMap   `json:"payment_totals"`
	WaterReadings   ReadingMap `json:"water_readings"`
	WaterMeterReset ResetMap   `json:"water_meter_reset"`
}

// Snapshot freezes the current occupant's billing facts for archival
func (p *Property) Snapshot(vacatedAt time.Time) *TenantSnapshot {
	return &TenantSnapshot{
		Tenant:          p.Tenant,
		Phone:           p.Phone,
		Rent:            p.Rent,
		JoinDate:        p.JoinDate,
		VacatedAt:       &vacatedAt,
		PaymentHistory:  p.PaymentHistory,
		PaymentTotals:   p.PaymentTotals,
		WaterReadings:   p.WaterReadings,
		WaterMeterReset: p.WaterMeterReset,
	}
}

// ============================================================
// Expense Ledger (created and deleted, never edited)
// ============================================================

// Expense categories
const (
	ExpenseMaintenance = "Maintenance"
	ExpenseElectricity = "Electricity"
	ExpenseWater       = "Water"
	ExpenseCleaning    = "Cleaning"
	ExpenseRepairs     = "Repairs"
	ExpenseTax         = "Tax"
	ExpenseOther       = "Other"
)

// ExpenseCategories lists the accepted category values
var ExpenseCategories = []string{
	ExpenseMaintenance,
	ExpenseElectricity,
	ExpenseWater,
	ExpenseCleaning,
	ExpenseRepairs,
	ExpenseTax,
	ExpenseOther,
}

// IsValidExpenseCategory reports whether category is an accepted value
func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expense represents the expenses table
type Expense struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Note      string    `gorm:"type:text" json:"note"`
	MonthKey  string    `gorm:"size:10;not null;index" json:"month_key"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Room{},
		&Property{},
		&Expense{},
	)
}
