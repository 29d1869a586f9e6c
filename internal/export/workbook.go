// Package export renders biodata listings as an .xlsx workbook.
package export

import (
	"fmt"
	"io"

	"biodata-api/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetBiodata   = "Biodata"
	SheetEducation = "Pendidikan"
	SheetTraining  = "Pelatihan"
	SheetWork      = "Pengalaman Kerja"

	dateLayout = "2006-01-02"
)

var (
	biodataHeader = []any{
		"ID", "Email Akun", "Posisi", "Nama", "No. KTP", "Tempat Lahir", "Tanggal Lahir",
		"Jenis Kelamin", "Agama", "Golongan Darah", "Status", "Alamat KTP", "Alamat Tinggal",
		"Email", "No. Telp", "Orang Terdekat", "Skill", "Bersedia Ditempatkan",
		"Penghasilan Diharapkan", "Dibuat", "Diperbarui",
	}
	educationHeader = []any{"Biodata ID", "Nama", "Jenjang", "Institusi", "Jurusan", "Tahun Lulus", "IPK"}
	trainingHeader  = []any{"Biodata ID", "Nama", "Kursus", "Sertifikat", "Tahun"}
	workHeader      = []any{"Biodata ID", "Nama", "Perusahaan", "Posisi", "Pendapatan", "Tahun"}
)

// WriteBiodataWorkbook writes one sheet for the profiles and one per child
// collection, keyed back to the profile by biodata id.
func WriteBiodataWorkbook(w io.Writer, list []models.Biodata) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBiodata); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetEducation, SheetTraining, SheetWork} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	rows := map[string][][]any{
		SheetBiodata:   {biodataHeader},
		SheetEducation: {educationHeader},
		SheetTraining:  {trainingHeader},
		SheetWork:      {workHeader},
	}
	for _, b := range list {
		rows[SheetBiodata] = append(rows[SheetBiodata], profileRow(b))
		for _, e := range b.Education {
			rows[SheetEducation] = append(rows[SheetEducation], []any{
				b.ID, b.Nama, e.JenjangPendidikan, e.NamaInstitusi, e.Jurusan, intCell(e.TahunLulus), floatCell(e.IPK),
			})
		}
		for _, t := range b.Training {
			rows[SheetTraining] = append(rows[SheetTraining], []any{
				b.ID, b.Nama, t.NamaKursus, yesNo(t.Sertifikat), intCell(t.Tahun),
			})
		}
		for _, x := range b.WorkExperience {
			rows[SheetWork] = append(rows[SheetWork], []any{
				b.ID, b.Nama, x.NamaPerusahaan, x.Posisi, floatCell(x.Pendapatan), intCell(x.Tahun),
			})
		}
	}

	for sheet, sheetRows := range rows {
		for i, row := range sheetRows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
			}
		}
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func profileRow(b models.Biodata) []any {
	birth := ""
	if b.TanggalLahir != nil && !b.TanggalLahir.IsZero() {
		birth = b.TanggalLahir.Format(dateLayout)
	}
	return []any{
		b.ID, b.UserEmail, b.Posisi, b.Nama, b.NoKTP, b.TempatLahir, birth,
		string(b.JenisKelamin), b.Agama, b.GolonganDarah, b.Status, b.AlamatKTP, b.AlamatTinggal,
		b.Email, b.NoTelp, b.OrangTerdekat, b.Skill, yesNo(b.BersediaDitempatkan),
		floatCell(b.PenghasilanDiharapkan), b.CreatedAt.Format(dateLayout), b.UpdatedAt.Format(dateLayout),
	}
}

func intCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "Ya"
	}
	return "Tidak"
}
