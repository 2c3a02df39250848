package students

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNameRequired     = errors.New("student name is required")
	ErrGuardianRequired = errors.New("at least one guardian is required")
	ErrGuardianName     = errors.New("guardian name is required")
	ErrNoSuchGuardian   = errors.New("no such guardian")
)

// Form is the student half of the registration screen.
type Form struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"` // yyyy-mm-dd
	Position  string `json:"position"`
	RG        string `json:"rg"`
	BloodType string `json:"blood_type"`
}

// FieldUpdate is one edit of a Form field. The set of updates is closed;
// each type below changes exactly one field.
type FieldUpdate interface{ applyTo(*Form) }

type (
	SetName      string
	SetCPF       string
	SetBirthDate string
	SetPosition  string
	SetRG        string
	SetBloodType string
)

func (v SetName) applyTo(f *Form)      { f.Name = string(v) }
func (v SetCPF) applyTo(f *Form)       { f.CPF = string(v) }
func (v SetBirthDate) applyTo(f *Form) { f.BirthDate = string(v) }
func (v SetPosition) applyTo(f *Form)  { f.Position = string(v) }
func (v SetRG) applyTo(f *Form)        { f.RG = string(v) }
func (v SetBloodType) applyTo(f *Form) { f.BloodType = string(v) }

// GuardianUpdate is one edit of a Guardian field.
type GuardianUpdate interface{ applyTo(*Guardian) }

type (
	SetGuardianName    string
	SetGuardianCPF     string
	SetGuardianEmail   string
	SetGuardianPhone   string
	SetGuardianAddress string
)

func (v SetGuardianName) applyTo(g *Guardian)    { g.Name = string(v) }
func (v SetGuardianCPF) applyTo(g *Guardian)     { g.CPF = string(v) }
func (v SetGuardianEmail) applyTo(g *Guardian)   { g.Email = string(v) }
func (v SetGuardianPhone) applyTo(g *Guardian)   { g.Phone = string(v) }
func (v SetGuardianAddress) applyTo(g *Guardian) { g.Address = string(v) }

// FormUpdates turns a filled form into the updates that produce it.
func FormUpdates(f Form) []FieldUpdate {
	return []FieldUpdate{
		SetName(f.Name), SetCPF(f.CPF), SetBirthDate(f.BirthDate),
		SetPosition(f.Position), SetRG(f.RG), SetBloodType(f.BloodType),
	}
}

// Registration collects a new student and their guardians.
type Registration struct {
	Student   Form       `json:"student"`
	Guardians []Guardian `json:"guardians"`
}

func (r *Registration) Update(updates ...FieldUpdate) {
	for _, u := range updates {
		u.applyTo(&r.Student)
	}
}

// AddGuardian appends a guardian built from updates.
func (r *Registration) AddGuardian(updates ...GuardianUpdate) error {
	var g Guardian
	for _, u := range updates {
		u.applyTo(&g)
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGuardianName
	}
	r.Guardians = append(r.Guardians, g)
	return nil
}

// EditGuardian applies updates to guardian i. Nothing changes if the result
// has no name.
func (r *Registration) EditGuardian(i int, updates ...GuardianUpdate) error {
	if i < 0 || i >= len(r.Guardians) {
		return fmt.Errorf("guardian %d: %w", i, ErrNoSuchGuardian)
	}
	g := r.Guardians[i]
	for _, u := range updates {
		u.applyTo(&g)
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGuardianName
	}
	r.Guardians[i] = g
	return nil
}

func (r *Registration) RemoveGuardian(i int) error {
	if i < 0 || i >= len(r.Guardians) {
		return fmt.Errorf("guardian %d: %w", i, ErrNoSuchGuardian)
	}
	r.Guardians = append(r.Guardians[:i], r.Guardians[i+1:]...)
	return nil
}

// Validate checks what the screen checks before submitting, plus that the
// birth date and position can be stored.
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.Student.Name) == "" {
		return ErrNameRequired
	}
	if len(r.Guardians) == 0 {
		return ErrGuardianRequired
	}
	for i, g := range r.Guardians {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("guardian %d: %w", i, ErrGuardianName)
		}
	}
	if r.Student.BirthDate != "" {
		if _, err := time.Parse(time.DateOnly, r.Student.BirthDate); err != nil {
			return fmt.Errorf("birth date: %w", err)
		}
	}
	if r.Student.Position != "" {
		if _, err := ParsePosition(r.Student.Position); err != nil {
			return err
		}
	}
	return nil
}

// ToStudent validates the registration and builds the stored record.
func (r *Registration) ToStudent(unitID int64, class string) (Student, error) {
	if err := r.Validate(); err != nil {
		return Student{}, err
	}
	s := Student{
		Name:      strings.TrimSpace(r.Student.Name),
		UnitID:    unitID,
		Class:     strings.ToUpper(strings.TrimSpace(class)),
		Guardian:  r.Guardians[0].Name,
		CPF:       r.Student.CPF,
		RG:        r.Student.RG,
		BloodType: r.Student.BloodType,
		Guardians: append([]Guardian(nil), r.Guardians...),
	}
	if r.Student.BirthDate != "" {
		t, _ := time.Parse(time.DateOnly, r.Student.BirthDate)
		s.BirthYear = t.Year()
	}
	if r.Student.Position != "" {
		s.Position, _ = ParsePosition(r.Student.Position)
	}
	return s, nil
}
