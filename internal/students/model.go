package students

import (
	"fmt"
	"strings"
)

type Position string

const (
	Goalkeeper Position = "Goalkeeper"
	Defender   Position = "Defender"
	Fullback   Position = "Fullback"
	Midfielder Position = "Midfielder"
	Forward    Position = "Forward"
)

// ParsePosition accepts the english names and the ones the coaches use.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goalkeeper", "goleiro", "gk":
		return Goalkeeper, nil
	case "defender", "zagueiro":
		return Defender, nil
	case "fullback", "lateral":
		return Fullback, nil
	case "midfielder", "meia":
		return Midfielder, nil
	case "forward", "atacante":
		return Forward, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

type Guardian struct {
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Student struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name"`
	Enrollment string     `json:"enrollment" gorm:"uniqueIndex"`
	UnitID     int64      `json:"unit_id" gorm:"index"`
	Class      string     `json:"class"`
	BirthYear  int        `json:"birth_year"`
	Position   Position   `json:"position"`
	Guardian   string     `json:"guardian"` // first guardian, shown in lists
	CPF        string     `json:"cpf,omitempty"`
	RG         string     `json:"rg,omitempty"`
	BloodType  string     `json:"blood_type,omitempty"`
	Guardians  []Guardian `json:"guardians,omitempty" gorm:"serializer:json"`
}
