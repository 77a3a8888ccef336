package models

import (
	"time"

	"github.com/lib/pq"
)

type Company struct {
	ID              string    `json:"id" gorm:"primaryKey;type:text"`
	Name            string    `json:"name" gorm:"type:text;index"`
	Country         string    `json:"country" gorm:"type:text"`
	Industry        string    `json:"industry" gorm:"type:text"`
	EmployeeCount   int       `json:"employeeCount"`
	RankByEmployees int       `json:"rankByEmployees"`
	CDate           time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Post struct {
	ID                string         `json:"id" gorm:"primaryKey;type:text"`
	CompanyID         string         `json:"companyId" gorm:"type:text;index"`
	Company           Company        `json:"-" gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE;"`
	Category          string         `json:"category" gorm:"type:text;index"`
	Title             string         `json:"title" gorm:"type:text"`
	Body              string         `json:"body" gorm:"type:text"`
	AuthorLabel       string         `json:"authorLabel" gorm:"type:text"`
	AuthorKey         string         `json:"-" gorm:"type:text;index"`
	Status            string         `json:"status" gorm:"type:text;index"`
	ModerationReasons pq.StringArray `json:"moderationReasons" gorm:"type:text[]"`
	CreatedDate       string         `json:"createdDate" gorm:"type:text"`
	Score             int            `json:"score"`
	LockReason        string         `json:"lockReason" gorm:"type:text"`
	BanReason         string         `json:"banReason" gorm:"type:text"`
	AdminReason       string         `json:"adminReason" gorm:"type:text"`
	CDate             time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Report struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	PostID      string    `json:"postId" gorm:"type:text;index"`
	Reason      string    `json:"reason" gorm:"type:text"`
	CreatedDate string    `json:"createdDate" gorm:"type:text"`
	Status      string    `json:"status" gorm:"type:text;index"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type CategoryLock struct {
	CompanyID string    `json:"companyId" gorm:"primaryKey;type:text"`
	Category  string    `json:"category" gorm:"primaryKey;type:text"`
	Reason    string    `json:"reason" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type AuthorBan struct {
	AuthorKey string    `json:"authorKey" gorm:"primaryKey;type:text"`
	Reason    string    `json:"reason" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
