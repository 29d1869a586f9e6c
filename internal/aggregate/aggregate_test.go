package aggregate

import (
	"testing"

	"biodata-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rows := [][]string{
		{"S1", "Universitas X", "Informatika", "2020", "3.5"},
		{"S2", "Universitas Y", "Sistem Informasi", "2023", "3.8"},
	}

	encoded := Encode(rows)
	assert.Equal(t, "S1|Universitas X|Informatika|2020|3.5;S2|Universitas Y|Sistem Informasi|2023|3.8", encoded)
	assert.Equal(t, rows, Decode(encoded, 5))
}

func TestDecode_MissingFieldsAreEmpty(t *testing.T) {
	rows := Decode("S1|X", 5)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"S1", "X", "", "", ""}, rows[0])
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, Decode("", 3))
	assert.Empty(t, DecodeEducation(""))
}

func TestEncode_KeepsDuplicates(t *testing.T) {
	list := []models.Training{
		{NamaKursus: "Go", Sertifikat: true, Tahun: intPtr(2021)},
		{NamaKursus: "Go", Sertifikat: true, Tahun: intPtr(2021)},
	}
	encoded := EncodeTraining(list)
	assert.Equal(t, "Go|1|2021;Go|1|2021", encoded)
	assert.Len(t, DecodeTraining(encoded), 2)
}

func TestEncode_DelimiterCollisionIsLossy(t *testing.T) {
	list := []models.WorkExperience{{NamaPerusahaan: "A|B", Posisi: "Dev"}}
	decoded := DecodeWork(EncodeWork(list))
	require.Len(t, decoded, 1)
	assert.NotEqual(t, "A|B", decoded[0].NamaPerusahaan)
}

func TestEducation_ExampleScenario(t *testing.T) {
	list := []models.Education{{
		JenjangPendidikan: "S1",
		NamaInstitusi:     "X",
		TahunLulus:        intPtr(2020),
		IPK:               floatPtr(3.5),
	}}

	decoded := DecodeEducation(EncodeEducation(list))

	assert.Equal(t, []EducationEntry{{
		JenjangPendidikan: "S1",
		NamaInstitusi:     "X",
		Jurusan:           "",
		TahunLulus:        "2020",
		IPK:               "3.5",
	}}, decoded)
}

func TestTypedRoundTrip(t *testing.T) {
	edu := []models.Education{
		{JenjangPendidikan: "SMA", NamaInstitusi: "SMAN 1", Jurusan: "IPA", TahunLulus: intPtr(2015)},
		{JenjangPendidikan: "S1", NamaInstitusi: "UI", Jurusan: "Hukum", TahunLulus: intPtr(2019), IPK: floatPtr(3.25)},
	}
	assert.Equal(t, edu, ToEducation(DecodeEducation(EncodeEducation(edu))))

	training := []models.Training{{NamaKursus: "K3", Sertifikat: false, Tahun: intPtr(2018)}}
	assert.Equal(t, training, ToTraining(DecodeTraining(EncodeTraining(training))))

	work := []models.WorkExperience{{NamaPerusahaan: "PT A", Posisi: "Staff", Pendapatan: floatPtr(5500000), Tahun: intPtr(2022)}}
	assert.Equal(t, work, ToWork(DecodeWork(EncodeWork(work))))
}

func TestTrainingEntry_HasCertificate(t *testing.T) {
	assert.True(t, TrainingEntry{Sertifikat: "1"}.HasCertificate())
	assert.True(t, TrainingEntry{Sertifikat: "true"}.HasCertificate())
	assert.False(t, TrainingEntry{Sertifikat: "0"}.HasCertificate())
	assert.False(t, TrainingEntry{}.HasCertificate())
}
