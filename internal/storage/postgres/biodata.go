package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"biodata-api/internal/models"
	"biodata-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BiodataRepo implements the storage.BiodataRepository interface using PostgreSQL.
type BiodataRepo struct {
	db Querier
}

// NewBiodataRepo creates a new BiodataRepo.
func NewBiodataRepo(db *pgxpool.Pool) *BiodataRepo {
	return &BiodataRepo{db: db}
}

// WithTx creates a new BiodataRepo bound to the transaction.
func (r *BiodataRepo) WithTx(tx pgx.Tx) storage.BiodataRepository {
	return &BiodataRepo{db: tx}
}

var _ storage.BiodataRepository = (*BiodataRepo)(nil)

// aggregatedSelect joins a biodata row with its owner and folds each child
// table into a JSON array ordered by insertion.
const aggregatedSelect = `
	SELECT b.id, b.user_id, u.email,
	       b.posisi, b.nama, b.no_ktp, b.tempat_lahir, b.tanggal_lahir, b.jenis_kelamin,
	       b.agama, b.golongan_darah, b.status, b.alamat_ktp, b.alamat_tinggal, b.email,
	       b.no_telp, b.orang_terdekat, b.skill, b.bersedia_ditempatkan,
	       b.penghasilan_diharapkan::float8,
	       b.created_at, b.updated_at,
	       COALESCE((
	           SELECT json_agg(json_build_object(
	               'id', e.id,
	               'jenjang_pendidikan', e.jenjang_pendidikan,
	               'nama_institusi', e.nama_institusi,
	               'jurusan', e.jurusan,
	               'tahun_lulus', e.tahun_lulus,
	               'ipk', e.ipk::float8) ORDER BY e.id)
	           FROM education e WHERE e.biodata_id = b.id), '[]'::json) AS education,
	       COALESCE((
	           SELECT json_agg(json_build_object(
	               'id', t.id,
	               'nama_kursus', t.nama_kursus,
	               'sertifikat', t.sertifikat,
	               'tahun', t.tahun) ORDER BY t.id)
	           FROM training t WHERE t.biodata_id = b.id), '[]'::json) AS training,
	       COALESCE((
	           SELECT json_agg(json_build_object(
	               'id', w.id,
	               'nama_perusahaan', w.nama_perusahaan,
	               'posisi', w.posisi,
	               'pendapatan', w.pendapatan::float8,
	               'tahun', w.tahun) ORDER BY w.id)
	           FROM work_experience w WHERE w.biodata_id = b.id), '[]'::json) AS work_experience
	FROM biodata b
	JOIN users u ON u.id = b.user_id
`

func scanBiodata(row pgx.Row) (*models.Biodata, error) {
	var (
		b     models.Biodata
		birth *time.Time
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserEmail,
		&b.Posisi, &b.Nama, &b.NoKTP, &b.TempatLahir, &birth, &b.JenisKelamin,
		&b.Agama, &b.GolonganDarah, &b.Status, &b.AlamatKTP, &b.AlamatTinggal, &b.Email,
		&b.NoTelp, &b.OrangTerdekat, &b.Skill, &b.BersediaDitempatkan,
		&b.PenghasilanDiharapkan,
		&b.CreatedAt, &b.UpdatedAt,
		&b.Education, &b.Training, &b.WorkExperience,
	)
	if err != nil {
		return nil, err
	}
	if birth != nil {
		b.TanggalLahir = models.NewDate(*birth)
	}
	for i := range b.Education {
		b.Education[i].BiodataID = b.ID
	}
	for i := range b.Training {
		b.Training[i].BiodataID = b.ID
	}
	for i := range b.WorkExperience {
		b.WorkExperience[i].BiodataID = b.ID
	}
	return &b, nil
}

func (r *BiodataRepo) queryBiodata(ctx context.Context, query string, args ...any) ([]models.Biodata, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Biodata{}
	for rows.Next() {
		b, err := scanBiodata(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts the biodata row and all of its children. Callers wanting
// all-or-nothing semantics run it on a repo obtained from WithTx.
func (r *BiodataRepo) Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error) {
	query := `
		INSERT INTO biodata (
			user_id, posisi, nama, no_ktp, tempat_lahir, tanggal_lahir, jenis_kelamin,
			agama, golongan_darah, status, alamat_ktp, alamat_tinggal, email,
			no_telp, orang_terdekat, skill, bersedia_ditempatkan, penghasilan_diharapkan
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	args := append([]any{ownerID}, profileArgs(&in.Profile)...)

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error creating biodata: owner %d does not exist: %v", ownerID, err)
			return 0, fmt.Errorf("failed to create biodata: invalid owner: %w", storage.ErrConflict)
		}
		log.Printf("Error creating biodata for user %d: %v", ownerID, err)
		return 0, fmt.Errorf("failed to create biodata: %w", err)
	}

	if err := r.insertChildren(ctx, id, in); err != nil {
		return 0, err
	}

	log.Printf("Biodata created successfully with ID: %d", id)
	return id, nil
}

// ListByOwner returns every biodata owned by ownerID.
func (r *BiodataRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error) {
	list, err := r.queryBiodata(ctx, aggregatedSelect+` WHERE b.user_id = $1 ORDER BY b.id`, ownerID)
	if err != nil {
		log.Printf("Error listing biodata for user %d: %v", ownerID, err)
		return nil, fmt.Errorf("failed to list biodata: %w", err)
	}
	return list, nil
}

// List returns biodata across all owners, newest first.
func (r *BiodataRepo) List(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	query, args := buildBiodataListQuery(aggregatedSelect, filter)

	list, err := r.queryBiodata(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing all biodata: %v", err)
		return nil, fmt.Errorf("failed to list biodata: %w", err)
	}
	return list, nil
}

// GetByID returns one aggregated biodata, scoped to ownerID when it is not nil.
func (r *BiodataRepo) GetByID(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error) {
	query := aggregatedSelect + ` WHERE b.id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND b.user_id = $2`
		args = append(args, *ownerID)
	}

	b, err := scanBiodata(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting biodata %d: %v", id, err)
		return nil, fmt.Errorf("failed to get biodata %d: %w", id, err)
	}
	return b, nil
}

// Update overwrites the scalar fields and replaces all child rows.
func (r *BiodataRepo) Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error {
	query := `
		UPDATE biodata SET
			posisi = $1, nama = $2, no_ktp = $3, tempat_lahir = $4, tanggal_lahir = $5,
			jenis_kelamin = $6, agama = $7, golongan_darah = $8, status = $9,
			alamat_ktp = $10, alamat_tinggal = $11, email = $12, no_telp = $13,
			orang_terdekat = $14, skill = $15, bersedia_ditempatkan = $16,
			penghasilan_diharapkan = $17, updated_at = NOW()
		WHERE id = $18
	`
	args := append(profileArgs(&in.Profile), id)
	if ownerID != nil {
		query += ` AND user_id = $19`
		args = append(args, *ownerID)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating biodata %d: %v", id, err)
		return fmt.Errorf("failed to update biodata %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	for _, table := range []string{"education", "training", "work_experience"} {
		if _, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE biodata_id = $1`, id); err != nil {
			log.Printf("Error clearing %s of biodata %d: %v", table, id, err)
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return r.insertChildren(ctx, id, in)
}

// Delete removes a biodata row; child rows go with it via ON DELETE CASCADE.
func (r *BiodataRepo) Delete(ctx context.Context, id int64, ownerID *int64) error {
	query := `DELETE FROM biodata WHERE id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND user_id = $2`
		args = append(args, *ownerID)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("Error deleting biodata %d: %v", id, err)
		return fmt.Errorf("failed to delete biodata %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *BiodataRepo) insertChildren(ctx context.Context, biodataID int64, in *models.BiodataInput) error {
	for _, e := range in.Education {
		_, err := r.db.Exec(ctx,
			`INSERT INTO education (biodata_id, jenjang_pendidikan, nama_institusi, jurusan, tahun_lulus, ipk)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			biodataID, e.JenjangPendidikan, e.NamaInstitusi, e.Jurusan, e.TahunLulus, e.IPK)
		if err != nil {
			log.Printf("Error inserting education for biodata %d: %v", biodataID, err)
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}
	for _, t := range in.Training {
		_, err := r.db.Exec(ctx,
			`INSERT INTO training (biodata_id, nama_kursus, sertifikat, tahun) VALUES ($1, $2, $3, $4)`,
			biodataID, t.NamaKursus, t.Sertifikat, t.Tahun)
		if err != nil {
			log.Printf("Error inserting training for biodata %d: %v", biodataID, err)
			return fmt.Errorf("failed to insert training: %w", err)
		}
	}
	for _, w := range in.WorkExperience {
		_, err := r.db.Exec(ctx,
			`INSERT INTO work_experience (biodata_id, nama_perusahaan, posisi, pendapatan, tahun) VALUES ($1, $2, $3, $4, $5)`,
			biodataID, w.NamaPerusahaan, w.Posisi, w.Pendapatan, w.Tahun)
		if err != nil {
			log.Printf("Error inserting work experience for biodata %d: %v", biodataID, err)
			return fmt.Errorf("failed to insert work experience: %w", err)
		}
	}
	return nil
}

// profileArgs lists the profile columns in the order used by the INSERT and UPDATE statements.
func profileArgs(p *models.Profile) []any {
	var birth any
	if p.TanggalLahir != nil && !p.TanggalLahir.IsZero() {
		birth = p.TanggalLahir.Time
	}
	return []any{
		p.Posisi, p.Nama, p.NoKTP, p.TempatLahir, birth, string(p.JenisKelamin),
		p.Agama, p.GolonganDarah, p.Status, p.AlamatKTP, p.AlamatTinggal, p.Email,
		p.NoTelp, p.OrangTerdekat, p.Skill, p.BersediaDitempatkan, p.PenghasilanDiharapkan,
	}
}
