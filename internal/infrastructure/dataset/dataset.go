// Package dataset ships the employer directory and a handful of seed
// posts baked into the binary, so the server browses meaningfully with
// no database attached.
package dataset

import (
	_ "embed"
	"encoding/json"
	"log/slog"

	"github.com/breakroom-app/breakroom/internal/domain"
)

//go:embed companies.json
var companiesRaw []byte

type companyRecord struct {
	CompanyID          string `json:"company_id"`
	CompanyName        string `json:"company_name"`
	Country            string `json:"country"`
	Industry           string `json:"industry"`
	NumberOfEmployees  int    `json:"number_of_employees"`
	RankingByEmployees int    `json:"ranking_by_employees"`
}

type companiesFile struct {
	Companies []companyRecord `json:"companies"`
}

// Companies decodes the embedded directory, ordered by employee-count
// rank. A corrupt payload logs a warning and yields an empty directory
// rather than refusing to start.
func Companies() []domain.Company {
	var file companiesFile
	if err := json.Unmarshal(companiesRaw, &file); err != nil {
		slog.Warn("embedded company dataset is unreadable", slog.String("error", err.Error()))
		return nil
	}
	out := make([]domain.Company, 0, len(file.Companies))
	for _, rec := range file.Companies {
		out = append(out, domain.Company{
			ID:              rec.CompanyID,
			Name:            rec.CompanyName,
			Country:         rec.Country,
			Industry:        rec.Industry,
			EmployeeCount:   rec.NumberOfEmployees,
			RankByEmployees: rec.RankingByEmployees,
		})
	}
	return out
}
