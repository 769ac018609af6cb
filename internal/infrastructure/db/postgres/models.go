package postgres

import (
	"time"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// Persistence models. The table layout is a fixed contract inherited from
// the existing deployment, so column names are spelled out explicitly.

type userModel struct {
	ID           uint      `gorm:"primaryKey"`
	Prename      string    `gorm:"size:120;not null"`
	Surname      string    `gorm:"size:120;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Username     string    `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Role         string    `gorm:"size:20;not null;check:role IN ('admin','contributor','member')"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type itemModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:200;not null"`
	Quantity          int    `gorm:"not null;check:quantity >= 0"`
	QuantityAvailable int    `gorm:"not null;check:chk_inventory_available,quantity_available >= 0 AND quantity_available <= quantity"`
	Description       string
	Category          string `gorm:"size:120;not null;index"`
	PictureURL        string `gorm:"column:picture_url"`
	IsForBorrow       bool   `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (itemModel) TableName() string { return "inventory" }

type borrowModel struct {
	ID         uint    `gorm:"primaryKey"`
	ItemID     uint    `gorm:"index;not null"`
	UserID     *uint   `gorm:"index"`
	GuestName  *string `gorm:"size:200"`
	GuestEmail *string `gorm:"size:255;check:chk_borrower_identity,(user_id IS NOT NULL AND guest_name IS NULL AND guest_email IS NULL) OR (user_id IS NULL AND guest_name IS NOT NULL AND guest_email IS NOT NULL)"`
	Quantity   int     `gorm:"not null;check:quantity >= 1"`
	StartDate  time.Time
	EndDate    time.Time
	Status     string `gorm:"size:20;not null;default:'pending';index"`
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (borrowModel) TableName() string { return "borrows" }

type eventModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string
	StartTime   time.Time `gorm:"not null"`
	EndTime     time.Time `gorm:"not null"`
	Location    string    `gorm:"size:200"`
	HostID      *uint
	HostName    string `gorm:"size:200"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (eventModel) TableName() string { return "events" }

type openingHoursModel struct {
	Weekday   int    `gorm:"primaryKey;check:weekday BETWEEN 0 AND 6"`
	OpenTime  string `gorm:"size:5;not null"`
	CloseTime string `gorm:"size:5;not null"`
	UpdatedAt time.Time
	UpdatedBy *uint
}

func (openingHoursModel) TableName() string { return "opening_hours" }

type calendarPeriodModel struct {
	ID          uint      `gorm:"primaryKey"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Description string
	Type        string `gorm:"size:20;not null;check:type IN ('holiday','closed','exams')"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (calendarPeriodModel) TableName() string { return "calendar_periods" }

type periodOpeningModel struct {
	Weekday   int    `gorm:"primaryKey"`
	PeriodID  uint   `gorm:"primaryKey;column:calendar_period_id"`
	OpenTime  string `gorm:"size:5;not null"`
	CloseTime string `gorm:"size:5;not null"`
}

func (periodOpeningModel) TableName() string { return "calendar_period_openings" }

// --- conversions ---

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Prename:      m.Prename,
		Surname:      m.Surname,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Prename:      u.Prename,
		Surname:      u.Surname,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

func (m *itemModel) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:                m.ID,
		Name:              m.Name,
		Quantity:          m.Quantity,
		QuantityAvailable: m.QuantityAvailable,
		Description:       m.Description,
		Category:          m.Category,
		PictureURL:        m.PictureURL,
		IsForBorrow:       m.IsForBorrow,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func itemFromDomain(it *domain.InventoryItem) *itemModel {
	return &itemModel{
		ID:                it.ID,
		Name:              it.Name,
		Quantity:          it.Quantity,
		QuantityAvailable: it.QuantityAvailable,
		Description:       it.Description,
		Category:          it.Category,
		PictureURL:        it.PictureURL,
		IsForBorrow:       it.IsForBorrow,
	}
}

func (m *borrowModel) toDomain() *domain.BorrowRecord {
	rec := &domain.BorrowRecord{
		ID:        m.ID,
		ItemID:    m.ItemID,
		UserID:    m.UserID,
		Quantity:  m.Quantity,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    domain.BorrowStatus(m.Status),
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.GuestName != nil {
		rec.GuestName = *m.GuestName
	}
	if m.GuestEmail != nil {
		rec.GuestEmail = *m.GuestEmail
	}
	return rec
}

func borrowFromDomain(b *domain.BorrowRecord) *borrowModel {
	m := &borrowModel{
		ID:        b.ID,
		ItemID:    b.ItemID,
		UserID:    b.UserID,
		Quantity:  b.Quantity,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    string(b.Status),
		Comment:   b.Comment,
	}
	if b.GuestName != "" {
		m.GuestName = &b.GuestName
	}
	if b.GuestEmail != "" {
		m.GuestEmail = &b.GuestEmail
	}
	return m
}

func (m *eventModel) toDomain() *domain.Event {
	return &domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Location:    m.Location,
		HostID:      m.HostID,
		HostName:    m.HostName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func eventFromDomain(e *domain.Event) *eventModel {
	return &eventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		HostID:      e.HostID,
		HostName:    e.HostName,
	}
}

func (m *openingHoursModel) toDomain() *domain.OpeningHours {
	return &domain.OpeningHours{
		Weekday:   m.Weekday,
		OpenTime:  m.OpenTime,
		CloseTime: m.CloseTime,
		UpdatedAt: m.UpdatedAt,
		UpdatedBy: m.UpdatedBy,
	}
}

func (m *calendarPeriodModel) toDomain() *domain.CalendarPeriod {
	return &domain.CalendarPeriod{
		ID:          m.ID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		Type:        domain.PeriodType(m.Type),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (m *periodOpeningModel) toDomain() *domain.PeriodOpening {
	return &domain.PeriodOpening{
		Weekday:   m.Weekday,
		PeriodID:  m.PeriodID,
		OpenTime:  m.OpenTime,
		CloseTime: m.CloseTime,
	}
}
