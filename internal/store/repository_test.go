package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var (
	profileCols   = []string{"id", "email", "pseudo", "prenom", "nom", "avatar_url", "strava_id", "password_hash", "created_at", "updated_at"}
	colCols       = []string{"id", "nom", "altitude", "latitude", "longitude", "denivele", "distance_km", "pente_moyenne", "pente_max", "pays", "region", "description", "difficulte", "strava_segment_id", "created_at"}
	ascensionCols = []string{"id", "user_id", "col_id", "date_ascension", "temps_secondes", "vitesse_moyenne_kmh", "frequence_cardiaque_moyenne", "puissance_moyenne_watts", "strava_activity_id", "validee", "created_at"}
	pinCols       = []string{"id", "user_id", "col_id", "note", "created_at"}
	statCols      = []string{"id", "pseudo", "cols_gravis", "nombre_ascensions", "denivele_total", "nombre_sorties"}
)

func colRow(id, name string, altitude int, now time.Time) []any {
	return []any{id, name, altitude, 45.0, 6.0, 1200, 18.5, 6.9, nil, "France", "Alpes", nil, "hc", nil, now}
}

// ---------------------------------------------------------------------------
// profiles
// ---------------------------------------------------------------------------

func TestCreateProfile_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &profileRepository{db: db, logger: logger.Nop(), ids: fixedID("p-1")}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs("p-1", "anna@example.com", "anna", "Anna", "", "hash").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("p-1", "anna@example.com", "anna", "Anna", "", nil, nil, "hash", now, now))

	created, err := repo.CreateProfile(context.Background(), models.Profile{
		Email: "anna@example.com", Pseudo: "anna", FirstName: "Anna", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", created.ID)
	assert.Equal(t, "anna", created.Pseudo)
	assert.Nil(t, created.AvatarURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		notWantErr error
	}{
		{"pseudo taken", pgConstraintError(pgerrcode.UniqueViolation, constraintPseudo), ErrPseudoAlreadyExists, nil},
		{"email taken", pgConstraintError(pgerrcode.UniqueViolation, constraintEmail), ErrEmailAlreadyExists, nil},
		{"unknown unique constraint", pgError(pgerrcode.UniqueViolation), ErrExecutingQuery, ErrPseudoAlreadyExists},
		{"connection lost", pgError(pgerrcode.ConnectionFailure), ErrTemporarilyUnavailable, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := &profileRepository{db: db, logger: logger.Nop(), ids: fixedID("p-1")}

			mock.ExpectQuery("INSERT INTO profiles").WillReturnError(tt.err)

			_, err := repo.CreateProfile(context.Background(), models.Profile{Pseudo: "anna"})
			require.ErrorIs(t, err, tt.wantErr)
			if tt.notWantErr != nil {
				assert.NotErrorIs(t, err, tt.notWantErr)
			}
		})
	}
}

func TestFindProfileByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &profileRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("FROM profiles").WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProfileByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFindProfileByID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &profileRepository{db: db, logger: logger.Nop()}
	now := time.Now()
	avatar := "https://example.com/a.png"

	mock.ExpectQuery("FROM profiles").WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("p-1", "anna@example.com", "anna", "Anna", "B", avatar, int64(99), "hash", now, now))

	p, err := repo.FindProfileByID(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, p.AvatarURL)
	assert.Equal(t, avatar, *p.AvatarURL)
	require.NotNil(t, p.StravaID)
	assert.Equal(t, int64(99), *p.StravaID)
}

func TestPseudoExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &profileRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT EXISTS").WithArgs("anna").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.PseudoExists(context.Background(), "anna")
	require.NoError(t, err)
	assert.True(t, exists)
}

// ---------------------------------------------------------------------------
// cols
// ---------------------------------------------------------------------------

func TestListCols_Filters(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &colRepository{db: db, logger: logger.Nop()}
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM cols WHERE pays = \$1 ORDER BY altitude DESC, nom`).
		WithArgs("France").
		WillReturnRows(sqlmock.NewRows(colCols).
			AddRow(colRow("c-1", "Galibier", 2642, now)...).
			AddRow(colRow("c-2", "Tourmalet", 2115, now)...))

	cols, err := repo.ListCols(context.Background(), ColQuery{Country: "France"})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "Galibier", cols[0].Name)
	require.NotNil(t, cols[0].Difficulty)
	assert.Equal(t, models.DifficultyHC, *cols[0].Difficulty)
	require.NotNil(t, cols[0].AvgGrade)
	assert.Nil(t, cols[0].MaxGrade)
}

func TestFindColByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &colRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("FROM cols").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindColByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrColNotFound)
}

func TestCountCols(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &colRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(`SELECT get_total_cols_count\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"get_total_cols_count"}).AddRow(12))

	total, err := repo.CountCols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestUpsertCols_CountsInsertsAndUpdates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &colRepository{db: db, logger: logger.Nop(), ids: fixedID("new-id")}
	hc := models.DifficultyHC

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO cols")
	prep.ExpectQuery().
		WithArgs("new-id", "Galibier", 2642, 45.064, 6.4078, 1245, 18.1, nil, nil, "France", nil, nil, "hc", nil).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))
	prep.ExpectQuery().
		WithArgs("c-2", "Ventoux", 1909, 44.17, 5.27, 1639, 21.5, nil, nil, "France", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))
	mock.ExpectCommit()

	inserted, updated, err := repo.UpsertCols(context.Background(), []models.Col{
		{Name: "Galibier", Altitude: 2642, Latitude: 45.064, Longitude: 6.4078, ElevationGain: 1245, DistanceKm: 18.1, Country: "France", Difficulty: &hc},
		{ID: "c-2", Name: "Ventoux", Altitude: 1909, Latitude: 44.17, Longitude: 5.27, ElevationGain: 1639, DistanceKm: 21.5, Country: "France"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCols_RollsBackOnFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &colRepository{db: db, logger: logger.Nop(), ids: fixedID("new-id")}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO cols")
	prep.ExpectQuery().WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	inserted, updated, err := repo.UpsertCols(context.Background(), []models.Col{{Name: "X", Altitude: 1, Country: "FR"}})
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.Zero(t, inserted)
	assert.Zero(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// ascensions
// ---------------------------------------------------------------------------

func TestCreateAscension_UnknownCol(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &ascensionRepository{db: db, logger: logger.Nop(), ids: fixedID("a-1")}

	mock.ExpectQuery("INSERT INTO ascensions").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateAscension(context.Background(), models.Ascension{UserID: "u", ColID: "c", Date: time.Now()})
	assert.ErrorIs(t, err, ErrColNotFound)
}

func TestCreateAscension_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &ascensionRepository{db: db, logger: logger.Nop(), ids: fixedID("a-1")}
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	secs := 5400

	mock.ExpectQuery("INSERT INTO ascensions").
		WithArgs("a-1", "u-1", "c-1", day, secs, nil, nil, nil, nil, true).
		WillReturnRows(sqlmock.NewRows(ascensionCols).
			AddRow("a-1", "u-1", "c-1", day, secs, nil, nil, nil, nil, true, day))

	a, err := repo.CreateAscension(context.Background(), models.Ascension{
		UserID: "u-1", ColID: "c-1", Date: day, DurationSeconds: &secs, Validated: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "a-1", a.ID)
	require.NotNil(t, a.DurationSeconds)
	assert.Equal(t, 5400, *a.DurationSeconds)
}

func TestDeleteAscension_NotOwned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &ascensionRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("DELETE FROM ascensions").WithArgs("a-1", "u-2").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAscension(context.Background(), "u-2", "a-1")
	assert.ErrorIs(t, err, ErrAscensionNotFound)
}

func TestClimbedColIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &ascensionRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT DISTINCT col_id").WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"col_id"}).AddRow("c-1").AddRow("c-3"))

	ids, err := repo.ClimbedColIDs(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1", "c-3"}, ids)
}

func TestListAscensions_JoinsCol(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &ascensionRepository{db: db, logger: logger.Nop()}
	now := time.Now()

	row := append([]any{"a-1", "u-1", "c-1", now, nil, nil, nil, nil, nil, true, now}, colRow("c-1", "Galibier", 2642, now)...)
	mock.ExpectQuery("FROM ascensions a JOIN cols c").
		WithArgs("u-1", true).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, ascensionCols...), colCols...)).AddRow(row...))

	list, err := repo.ListAscensions(context.Background(), AscensionQuery{UserID: "u-1", ValidatedOnly: true, Limit: 5})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Col)
	assert.Equal(t, "Galibier", list[0].Col.Name)
}

// ---------------------------------------------------------------------------
// pins
// ---------------------------------------------------------------------------

func TestCreatePin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"already pinned", pgError(pgerrcode.UniqueViolation), ErrAlreadyPinned},
		{"unknown col", pgError(pgerrcode.ForeignKeyViolation), ErrColNotFound},
		{"other", errors.New("boom"), ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := &pinRepository{db: db, logger: logger.Nop(), ids: fixedID("pin-1")}

			mock.ExpectQuery("INSERT INTO cols_epingles").WillReturnError(tt.err)

			_, err := repo.CreatePin(context.Background(), models.Pin{UserID: "u", ColID: "c"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeletePin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &pinRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("DELETE FROM cols_epingles").WithArgs("u", "c").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cols_epingles").WithArgs("u", "c").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeletePin(context.Background(), "u", "c"))
	assert.ErrorIs(t, repo.DeletePin(context.Background(), "u", "c"), ErrPinNotFound)
}

func TestUpdatePinNote_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &pinRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("UPDATE cols_epingles").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePinNote(context.Background(), "u", "c", nil)
	assert.ErrorIs(t, err, ErrPinNotFound)
}

func TestListPinnedCols(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &pinRepository{db: db, logger: logger.Nop()}
	now := time.Now()

	row := append([]any{"pin-1", "u-1", "c-1", "avant l'été", now}, colRow("c-1", "Galibier", 2642, now)...)
	mock.ExpectQuery("FROM cols_epingles p JOIN cols c").WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, pinCols...), colCols...)).AddRow(row...))

	pins, err := repo.ListPinnedCols(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, pins, 1)
	require.NotNil(t, pins[0].Note)
	assert.Equal(t, "avant l'été", *pins[0].Note)
	assert.Equal(t, "Galibier", pins[0].Col.Name)
}

// ---------------------------------------------------------------------------
// favorites
// ---------------------------------------------------------------------------

func TestCreateFavorite_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"duplicate", pgError(pgerrcode.UniqueViolation), ErrAlreadyFavorite},
		{"self", pgConstraintError(pgerrcode.CheckViolation, constraintFavoriteSelf), ErrSelfFavorite},
		{"unknown user", pgError(pgerrcode.ForeignKeyViolation), ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := &favoriteRepository{db: db, logger: logger.Nop(), ids: fixedID("f-1")}

			mock.ExpectQuery("INSERT INTO favoris").WillReturnError(tt.err)

			_, err := repo.CreateFavorite(context.Background(), models.Favorite{UserID: "u", FavoriteUserID: "v"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteUserIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &favoriteRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT favori_user_id").WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"favori_user_id"}).AddRow("v").AddRow("w"))

	ids, err := repo.FavoriteUserIDs(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"v", "w"}, ids)
}

func TestDeleteFavorite_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &favoriteRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("DELETE FROM favoris").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteFavorite(context.Background(), "u", "v"), ErrFavoriteNotFound)
}

// ---------------------------------------------------------------------------
// statistics
// ---------------------------------------------------------------------------

func TestListStatistics(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &statisticsRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("FROM user_statistics WHERE id <> \\$1 AND pseudo ILIKE \\$2").
		WithArgs("me", "%an%").
		WillReturnRows(sqlmock.NewRows(statCols).
			AddRow("u-2", "anna", 5, 7, 8000, 6).
			AddRow("u-3", "jean", 2, 2, 2500, 2))

	list, err := repo.ListStatistics(context.Background(), StatisticsQuery{ExcludeUserID: "me", Search: "an"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].ColsClimbed)
	assert.Equal(t, 8000, list[0].TotalElevation)
}

func TestStatisticsByUser_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &statisticsRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("FROM user_statistics").WillReturnError(sql.ErrNoRows)

	_, err := repo.StatisticsByUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// ---------------------------------------------------------------------------
// sessions
// ---------------------------------------------------------------------------

func TestSessionRepository_RoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &sessionRepository{db: db, logger: logger.Nop()}
	saved := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	session := models.Session{ServerURL: "http://localhost:8080", UserID: "u-1", Pseudo: "anna", AccessToken: "tok", SavedAt: saved}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.ServerURL, session.UserID, session.Pseudo, session.AccessToken, saved).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM sessions").WithArgs(session.ServerURL).
		WillReturnRows(sqlmock.NewRows([]string{"server_url", "user_id", "pseudo", "access_token", "saved_at"}).
			AddRow(session.ServerURL, session.UserID, session.Pseudo, session.AccessToken, saved))
	mock.ExpectExec("DELETE FROM sessions").WithArgs(session.ServerURL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM sessions").WithArgs(session.ServerURL).WillReturnError(sql.ErrNoRows)

	ctx := context.Background()
	require.NoError(t, repo.SaveSession(ctx, session))

	loaded, err := repo.LoadSession(ctx, session.ServerURL)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, repo.DeleteSession(ctx, session.ServerURL))

	_, err = repo.LoadSession(ctx, session.ServerURL)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
