// Package aggregate implements the legacy flat encoding of a biodata's child
// collections: rows are joined by ';' and the fields of a row by '|', in a
// fixed order per child type. Values are not escaped, so a field containing
// either delimiter does not survive a round trip.
package aggregate

import (
	"strconv"
	"strings"

	"biodata-api/internal/models"
)

const (
	RowSeparator   = ";"
	FieldSeparator = "|"
)

// Field widths per child type.
const (
	educationFields = 5 // level|institution|major|year|gpa
	trainingFields  = 3 // name|hasCertificate|year
	workFields      = 4 // company|position|income|year
)

// EducationEntry is a decoded education row. All values stay strings.
type EducationEntry struct {
	JenjangPendidikan string `json:"jenjang_pendidikan"`
	NamaInstitusi     string `json:"nama_institusi"`
	Jurusan           string `json:"jurusan"`
	TahunLulus        string `json:"tahun_lulus"`
	IPK               string `json:"ipk"`
}

// TrainingEntry is a decoded training row.
type TrainingEntry struct {
	NamaKursus string `json:"nama_kursus"`
	Sertifikat string `json:"sertifikat"`
	Tahun      string `json:"tahun"`
}

// WorkEntry is a decoded work experience row.
type WorkEntry struct {
	NamaPerusahaan string `json:"nama_perusahaan"`
	Posisi         string `json:"posisi"`
	Pendapatan     string `json:"pendapatan"`
	Tahun          string `json:"tahun"`
}

// Encode joins rows of fields. Every row is kept, duplicates included.
func Encode(rows [][]string) string {
	parts := make([]string, len(rows))
	for i, fields := range rows {
		parts[i] = strings.Join(fields, FieldSeparator)
	}
	return strings.Join(parts, RowSeparator)
}

// Decode splits s into rows of exactly width fields. Missing trailing fields
// decode as "", extra fields are dropped, and an empty string has no rows.
func Decode(s string, width int) [][]string {
	if s == "" {
		return [][]string{}
	}
	rawRows := strings.Split(s, RowSeparator)
	rows := make([][]string, 0, len(rawRows))
	for _, raw := range rawRows {
		parts := strings.Split(raw, FieldSeparator)
		fields := make([]string, width)
		copy(fields, parts)
		rows = append(rows, fields)
	}
	return rows
}

// EncodeEducation flattens education rows as level|institution|major|year|gpa.
func EncodeEducation(list []models.Education) string {
	rows := make([][]string, len(list))
	for i, e := range list {
		rows[i] = []string{e.JenjangPendidikan, e.NamaInstitusi, e.Jurusan, formatInt(e.TahunLulus), formatFloat(e.IPK)}
	}
	return Encode(rows)
}

// EncodeTraining flattens training rows as name|hasCertificate|year.
func EncodeTraining(list []models.Training) string {
	rows := make([][]string, len(list))
	for i, t := range list {
		rows[i] = []string{t.NamaKursus, formatBool(t.Sertifikat), formatInt(t.Tahun)}
	}
	return Encode(rows)
}

// EncodeWork flattens work experience rows as company|position|income|year.
func EncodeWork(list []models.WorkExperience) string {
	rows := make([][]string, len(list))
	for i, w := range list {
		rows[i] = []string{w.NamaPerusahaan, w.Posisi, formatFloat(w.Pendapatan), formatInt(w.Tahun)}
	}
	return Encode(rows)
}

func DecodeEducation(s string) []EducationEntry {
	rows := Decode(s, educationFields)
	out := make([]EducationEntry, len(rows))
	for i, f := range rows {
		out[i] = EducationEntry{JenjangPendidikan: f[0], NamaInstitusi: f[1], Jurusan: f[2], TahunLulus: f[3], IPK: f[4]}
	}
	return out
}

func DecodeTraining(s string) []TrainingEntry {
	rows := Decode(s, trainingFields)
	out := make([]TrainingEntry, len(rows))
	for i, f := range rows {
		out[i] = TrainingEntry{NamaKursus: f[0], Sertifikat: f[1], Tahun: f[2]}
	}
	return out
}

func DecodeWork(s string) []WorkEntry {
	rows := Decode(s, workFields)
	out := make([]WorkEntry, len(rows))
	for i, f := range rows {
		out[i] = WorkEntry{NamaPerusahaan: f[0], Posisi: f[1], Pendapatan: f[2], Tahun: f[3]}
	}
	return out
}

// HasCertificate interprets the sertifikat field of a decoded training row.
func (t TrainingEntry) HasCertificate() bool {
	return t.Sertifikat == "1" || strings.EqualFold(t.Sertifikat, "true")
}

// ToEducation converts decoded rows back into typed education rows.
// Unparseable numbers become nil.
func ToEducation(entries []EducationEntry) []models.Education {
	out := make([]models.Education, len(entries))
	for i, e := range entries {
		out[i] = models.Education{
			JenjangPendidikan: e.JenjangPendidikan,
			NamaInstitusi:     e.NamaInstitusi,
			Jurusan:           e.Jurusan,
			TahunLulus:        parseInt(e.TahunLulus),
			IPK:               parseFloat(e.IPK),
		}
	}
	return out
}

func ToTraining(entries []TrainingEntry) []models.Training {
	out := make([]models.Training, len(entries))
	for i, t := range entries {
		out[i] = models.Training{NamaKursus: t.NamaKursus, Sertifikat: t.HasCertificate(), Tahun: parseInt(t.Tahun)}
	}
	return out
}

func ToWork(entries []WorkEntry) []models.WorkExperience {
	out := make([]models.WorkExperience, len(entries))
	for i, w := range entries {
		out[i] = models.WorkExperience{
			NamaPerusahaan: w.NamaPerusahaan,
			Posisi:         w.Posisi,
			Pendapatan:     parseFloat(w.Pendapatan),
			Tahun:          parseInt(w.Tahun),
		}
	}
	return out
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
