package models

import (
	"strings"
	"time"
)

// Field names of the reservas collection.
const (
	FieldStatus        = "estado"
	FieldDate          = "fechaHora"
	FieldSource        = "origen"
	FieldName          = "nombre"
	FieldPhone         = "telefono"
	FieldService       = "servicio"
	FieldAmount        = "monto"
	FieldPrice         = "precio"
	FieldPaymentStatus = "estadoPago"
	FieldModality      = "modalidad"
	FieldAddress       = "direccion"
	FieldMessage       = "mensaje"
	FieldCreatedAt     = "creadoEn"
	FieldUpdatedAt     = "actualizadoEn"
)

// Status is the lifecycle state of a booking. Values are the ones stored in
// the estado field.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "realizado"
	StatusCancelled Status = "cancelado"
)

// Statuses lists the closed set of booking states.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

var statusAliases = map[string]Status{
	"pendiente":  StatusPending,
	"pending":    StatusPending,
	"confirmado": StatusConfirmed,
	"confirmed":  StatusConfirmed,
	"realizado":  StatusCompleted,
	"completed":  StatusCompleted,
	"cancelado":  StatusCancelled,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled,
}

// ParseStatus resolves a stored value or its English name, ignoring case.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is the table-row view of a reservas record with the dashboard's
// defaults applied.
type Booking struct {
	ID            string     `json:"id"`
	Name          string     `json:"nombre"`
	Phone         string     `json:"telefono"`
	Service       string     `json:"servicio"`
	Date          *time.Time `json:"fechaHora,omitempty"`
	Status        Status     `json:"estado"`
	Source        string     `json:"origen"`
	PaymentStatus string     `json:"estadoPago"`
	Modality      string     `json:"modalidad"`
	Amount        float64    `json:"monto"`
	Address       string     `json:"direccion"`
	Notes         string     `json:"notas"`
}

// BookingStatus returns the record's status, lowercased. Absent or empty
// values default to pending; unknown values are returned verbatim.
func BookingStatus(r Record) Status {
	raw := strings.ToLower(r.String(FieldStatus))
	if raw == "" {
		return StatusPending
	}
	return Status(raw)
}

// BookingFromRecord decodes a reservas record.
func BookingFromRecord(r Record) Booking {
	b := Booking{
		ID:            r.ID,
		Name:          r.String(FieldName),
		Phone:         r.String(FieldPhone),
		Service:       r.String(FieldService),
		Status:        BookingStatus(r),
		Source:        strings.ToLower(r.String(FieldSource)),
		PaymentStatus: r.FirstString(FieldPaymentStatus, "pagoEstado", "pago"),
		Modality:      r.FirstString(FieldModality, FieldSource),
		Address:       r.FirstString(FieldAddress, "domicilio"),
		Notes:         r.FirstString(FieldMessage, "notas"),
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "Pendiente"
	}
	if t, ok := r.Time(FieldDate); ok {
		b.Date = &t
	}
	if v, ok := r.Number(FieldAmount); ok {
		b.Amount = v
	} else if v, ok := r.Number(FieldPrice); ok {
		b.Amount = v
	}
	return b
}

// NewBooking is the input of a booking creation.
type NewBooking struct {
	Name    string     `json:"nombre" binding:"required"`
	Phone   string     `json:"telefono"`
	Service string     `json:"servicio"`
	Date    *time.Time `json:"fechaHora"`
	Source  string     `json:"origen"`
}

// Fields returns the document written for a new booking. New bookings always
// start pending; the date falls back to the store's commit time.
func (n NewBooking) Fields() map[string]any {
	var date any = ServerTimestamp
	if n.Date != nil && !n.Date.IsZero() {
		date = *n.Date
	}
	return map[string]any{
		FieldName:      strings.TrimSpace(n.Name),
		FieldPhone:     strings.TrimSpace(n.Phone),
		FieldService:   strings.TrimSpace(n.Service),
		FieldDate:      date,
		FieldSource:    strings.ToLower(strings.TrimSpace(n.Source)),
		FieldStatus:    string(StatusPending),
		FieldCreatedAt: ServerTimestamp,
	}
}
