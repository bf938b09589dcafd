package controllers

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentora/rentora/modules/fleet/importing"
)

// rowDTO is the wire form of one preview row. Expiry cells travel as plain
// strings; edited dates come back the same way and re-enter the pipeline as
// text cells.
type rowDTO struct {
	PlateNumber        string `json:"plate_number"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	Color              string `json:"color,omitempty"`
	VIN                string `json:"vin,omitempty"`
	ChassisNumber      string `json:"chassis_number,omitempty"`
	EngineNumber       string `json:"engine_number,omitempty"`
	RegistrationType   string `json:"registration_type,omitempty"`
	OwnerName          string `json:"owner_name,omitempty"`
	InspectionStatus   string `json:"inspection_status,omitempty"`
	InsuranceStatus    string `json:"insurance_status,omitempty"`
	RenewalStatus      string `json:"renewal_status,omitempty"`
	Status             string `json:"status,omitempty"`
	InspectionExpiry   string `json:"inspection_expiry,omitempty"`
	InsuranceExpiry    string `json:"insurance_expiry,omitempty"`
	RegistrationExpiry string `json:"registration_expiry,omitempty"`
	RenewalFees        string `json:"renewal_fees,omitempty"`
	DailyRate          string `json:"daily_rate,omitempty"`
	Mileage            *int64 `json:"mileage,omitempty"`
	SeatingCapacity    *int64 `json:"seating_capacity,omitempty"`
}

func decodeRowDTO(r io.Reader) (*rowDTO, error) {
	var dto rowDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (d *rowDTO) toRecord() importing.Record {
	// Edited rows bypass the mapper, so identifying fields are trimmed here
	// the same way MapRow trims them.
	rec := importing.Record{
		PlateNumber:      strings.TrimSpace(d.PlateNumber),
		Brand:            strings.TrimSpace(d.Brand),
		Model:            strings.TrimSpace(d.Model),
		Year:             d.Year,
		Color:            d.Color,
		VIN:              d.VIN,
		ChassisNumber:    d.ChassisNumber,
		EngineNumber:     d.EngineNumber,
		RegistrationType: d.RegistrationType,
		OwnerName:        d.OwnerName,
		InspectionStatus: d.InspectionStatus,
		InsuranceStatus:  d.InsuranceStatus,
		RenewalStatus:    d.RenewalStatus,
		Status:           d.Status,
		RenewalFees:      decimal.Zero,
		DailyRate:        decimal.Zero,
		Mileage:          d.Mileage,
		SeatingCapacity:  d.SeatingCapacity,
	}

	if d.InspectionExpiry != "" {
		rec.InspectionExpiry = importing.Text(d.InspectionExpiry)
	}
	if d.InsuranceExpiry != "" {
		rec.InsuranceExpiry = importing.Text(d.InsuranceExpiry)
	}
	if d.RegistrationExpiry != "" {
		rec.RegistrationExpiry = importing.Text(d.RegistrationExpiry)
	}
	if d.RenewalFees != "" {
		if fees, err := decimal.NewFromString(d.RenewalFees); err == nil {
			rec.RenewalFees = fees
		}
	}
	if d.DailyRate != "" {
		if rate, err := decimal.NewFromString(d.DailyRate); err == nil {
			rec.DailyRate = rate
		}
	}
	return rec
}

func fromRecord(rec importing.Record) rowDTO {
	return rowDTO{
		PlateNumber:        rec.PlateNumber,
		Brand:              rec.Brand,
		Model:              rec.Model,
		Year:               rec.Year,
		Color:              rec.Color,
		VIN:                rec.VIN,
		ChassisNumber:      rec.ChassisNumber,
		EngineNumber:       rec.EngineNumber,
		RegistrationType:   rec.RegistrationType,
		OwnerName:          rec.OwnerName,
		InspectionStatus:   rec.InspectionStatus,
		InsuranceStatus:    rec.InsuranceStatus,
		RenewalStatus:      rec.RenewalStatus,
		Status:             rec.Status,
		InspectionExpiry:   rec.InspectionExpiry.String(),
		InsuranceExpiry:    rec.InsuranceExpiry.String(),
		RegistrationExpiry: rec.RegistrationExpiry.String(),
		RenewalFees:        rec.RenewalFees.String(),
		DailyRate:          rec.DailyRate.String(),
		Mileage:            rec.Mileage,
		SeatingCapacity:    rec.SeatingCapacity,
	}
}

type previewResponse struct {
	SessionID string                    `json:"session_id"`
	Rows      []rowDTO                  `json:"rows"`
	Issues    map[int][]importing.Issue `json:"issues"`
	Blocked   bool                      `json:"blocked"`
}

func newPreviewResponse(sessionID uuid.UUID, sess *importing.Session) *previewResponse {
	rows := make([]rowDTO, 0, sess.Len())
	for _, rec := range sess.Records() {
		rows = append(rows, fromRecord(rec))
	}
	return &previewResponse{
		SessionID: sessionID.String(),
		Rows:      rows,
		Issues:    sess.Issues(),
		Blocked:   sess.Blocked(),
	}
}
