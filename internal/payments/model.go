package payments

import (
	"fmt"
	"strings"
)

type Status string

const (
	Paid    Status = "Paid"
	Pending Status = "Pending"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid", "pago":
		return Paid, nil
	case "pending", "pendente":
		return Pending, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment is one monthly fee of a student.
type Payment struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Student     string `json:"student"`
	Guardian    string `json:"guardian"`
	Status      Status `json:"status"`
	Date        string `json:"date"` // dd/mm/yyyy
	AmountCents int64  `json:"amount_cents"`
}

// Amount formats the fee the way the staff reads it, e.g. "R$ 100,00".
func (p Payment) Amount() string {
	return fmt.Sprintf("R$ %d,%02d", p.AmountCents/100, p.AmountCents%100)
}
