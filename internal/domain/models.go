package domain

import (
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is one entry of a channel's history.
type ChatMessage struct {
	Timestamp time.Time
	Author    string
	Text      string
}

type Channel struct {
	Name string
}

// Profile records a nickname/server combination the shell was started with.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nickname    string    `gorm:"uniqueIndex:idx_profile_target" validate:"required,max=32,nickname"`
	Host        string    `gorm:"uniqueIndex:idx_profile_target" validate:"required,hostname_rfc1123|ip"`
	Port        int       `gorm:"uniqueIndex:idx_profile_target" validate:"min=1,max=65535"`
	Description string
	LastUsedAt  time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns an ID when the caller did not.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Address returns host:port.
func (p Profile) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}
