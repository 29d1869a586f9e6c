package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// --- Role Enum ---
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := Role(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Gender Enum ---
type Gender string

const (
	GenderMale   Gender = "LAKI-LAKI"
	GenderFemale Gender = "PEREMPUAN"
)

// Date is a calendar date carried as YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) *Date {
	y, m, d := t.Date()
	return &Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts YYYY-MM-DD or a full RFC3339 timestamp (the form
// widgets send either); an empty string leaves the date zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// User represents an account in the system
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile holds the scalar fields of a biodata submission.
type Profile struct {
	Posisi                string   `json:"posisi" validate:"max=255"`
	Nama                  string   `json:"nama" validate:"required,max=255"`
	NoKTP                 string   `json:"no_ktp" validate:"max=20"`
	TempatLahir           string   `json:"tempat_lahir" validate:"max=255"`
	TanggalLahir          *Date    `json:"tanggal_lahir"`
	JenisKelamin          Gender   `json:"jenis_kelamin" validate:"required,oneof=LAKI-LAKI PEREMPUAN"`
	Agama                 string   `json:"agama" validate:"max=100"`
	GolonganDarah         string   `json:"golongan_darah" validate:"max=5"`
	Status                string   `json:"status" validate:"max=50"`
	AlamatKTP             string   `json:"alamat_ktp"`
	AlamatTinggal         string   `json:"alamat_tinggal"`
	Email                 string   `json:"email" validate:"omitempty,email,max=255"`
	NoTelp                string   `json:"no_telp" validate:"max=20"`
	OrangTerdekat         string   `json:"orang_terdekat" validate:"max=255"`
	Skill                 string   `json:"skill"`
	BersediaDitempatkan   bool     `json:"bersedia_ditempatkan"`
	PenghasilanDiharapkan *float64 `json:"penghasilan_diharapkan" validate:"omitempty,gte=0,lt=10000000000000"`
}

// Education is one row of a biodata's education history.
type Education struct {
	ID                int64    `json:"id,omitempty" db:"id"`
	BiodataID         int64    `json:"-" db:"biodata_id"`
	JenjangPendidikan string   `json:"jenjang_pendidikan" db:"jenjang_pendidikan" validate:"max=100"`
	NamaInstitusi     string   `json:"nama_institusi" db:"nama_institusi" validate:"max=255"`
	Jurusan           string   `json:"jurusan" db:"jurusan" validate:"max=255"`
	TahunLulus        *int     `json:"tahun_lulus" db:"tahun_lulus" validate:"omitempty,gte=1900,lte=2200"`
	IPK               *float64 `json:"ipk" db:"ipk" validate:"omitempty,gte=0,lte=9.99"`
}

// Training is one course in a biodata's training history.
type Training struct {
	ID         int64  `json:"id,omitempty" db:"id"`
	BiodataID  int64  `json:"-" db:"biodata_id"`
	NamaKursus string `json:"nama_kursus" db:"nama_kursus" validate:"max=255"`
	Sertifikat bool   `json:"sertifikat" db:"sertifikat"`
	Tahun      *int   `json:"tahun" db:"tahun" validate:"omitempty,gte=1900,lte=2200"`
}

// WorkExperience is one previous job of a biodata owner.
type WorkExperience struct {
	ID             int64    `json:"id,omitempty" db:"id"`
	BiodataID      int64    `json:"-" db:"biodata_id"`
	NamaPerusahaan string   `json:"nama_perusahaan" db:"nama_perusahaan" validate:"max=255"`
	Posisi         string   `json:"posisi" db:"posisi" validate:"max=255"`
	Pendapatan     *float64 `json:"pendapatan" db:"pendapatan" validate:"omitempty,gte=0,lt=10000000000000"`
	Tahun          *int     `json:"tahun" db:"tahun" validate:"omitempty,gte=1900,lte=2200"`
}

// BiodataInput is the full replacement payload for a biodata and its children.
type BiodataInput struct {
	Profile
	Education      []Education      `json:"education" validate:"dive"`
	Training       []Training       `json:"training" validate:"dive"`
	WorkExperience []WorkExperience `json:"work_experience" validate:"dive"`
}

// Biodata is the aggregated read view: the profile row joined with its children.
type Biodata struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email,omitempty"`
	Profile
	Education      []Education      `json:"education"`
	Training       []Training       `json:"training"`
	WorkExperience []WorkExperience `json:"work_experience"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SearchField selects which column a biodata search matches against.
type SearchField string

const (
	SearchByNama       SearchField = "nama"
	SearchByPosisi     SearchField = "posisi"
	SearchByPendidikan SearchField = "pendidikan"
)

// BiodataFilter narrows the admin listing.
type BiodataFilter struct {
	Search string
	By     SearchField
	Limit  int
	Offset int
}
