package dto

import "time"

// BackupDTO mirrors the export contract: absent collections stay nil and
// are skipped on restore.
type BackupDTO struct {
	Members    []MemberResponseDTO          `json:"members"`
	Payouts    []PayoutResponseDTO          `json:"payouts"`
	Stats      []CompletedPayoutResponseDTO `json:"stats"`
	ExportDate time.Time                    `json:"exportDate"`
}
