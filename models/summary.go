package models

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Content kinds describing the origin of a summary's source material.
// ContentTypeVideo is reserved; no ingestion route accepts it yet.
const (
	ContentTypeText    = "text"
	ContentTypeWebsite = "website"
	ContentTypeFile    = "file"
	ContentTypeVideo   = "video"
)

// MaxTags is the most tags a summary may carry; classifier output is
// truncated to this before persistence.
const MaxTags = 5

// StringList stores an ordered list of short strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Summary is the stored record for a classified piece of user-submitted
// content. Likes/Dislikes/Favorites are counters kept in sync with the
// profile reaction sets; listing sorts read these columns directly.
type Summary struct {
	ID          int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title       string     `gorm:"size:50;not null;default:''" json:"title"`
	Summary     string     `gorm:"type:text;not null;default:''" json:"summary"`
	Category    string     `gorm:"size:20;not null;default:''" json:"category"`
	ContentType string     `gorm:"size:10;not null;default:''" json:"content_type"`
	UserPrompt  string     `gorm:"type:text;not null;default:''" json:"user_prompt"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	RawText     string     `gorm:"type:text;not null;default:''" json:"raw_text"`
	URL         string     `gorm:"type:text;not null;default:''" json:"url"`
	IsPrivate   bool       `gorm:"not null;default:false" json:"is_private"`
	Likes       int        `gorm:"not null;default:0" json:"likes"`
	Dislikes    int        `gorm:"not null;default:0" json:"dislikes"`
	Favorites   int        `gorm:"not null;default:0" json:"favorites"`

	AuthorID uint  `gorm:"not null;index" json:"-"`
	Author   *User `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// BeforeCreate assigns a random positive 63-bit identifier so summary ids
// cannot be enumerated sequentially.
func (s *Summary) BeforeCreate(tx *gorm.DB) error {
	if s.ID != 0 {
		return nil
	}
	id, err := randomID()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func randomID() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	id := int64(binary.BigEndian.Uint64(buf[:]) >> 1)
	if id == 0 {
		id = 1
	}
	return id, nil
}
