package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	profileColumns   = `id, email, pseudo, prenom, nom, avatar_url, strava_id, password_hash, created_at, updated_at`
	colColumns       = `id, nom, altitude, latitude, longitude, denivele, distance_km, pente_moyenne, pente_max, pays, region, description, difficulte, strava_segment_id, created_at`
	ascensionColumns = `id, user_id, col_id, date_ascension, temps_secondes, vitesse_moyenne_kmh, frequence_cardiaque_moyenne, puissance_moyenne_watts, strava_activity_id, validee, created_at`
	pinColumns       = `id, user_id, col_id, note, created_at`
	statsColumns     = `id, pseudo, cols_gravis, nombre_ascensions, denivele_total, nombre_sorties`
)

// Constraint names from the migrations.
const (
	constraintPseudo       = "profiles_pseudo_key"
	constraintEmail        = "profiles_email_key"
	constraintFavoriteSelf = "favoris_not_self"
)

const (
	createProfile = `INSERT INTO profiles (id, email, pseudo, prenom, nom, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns + `;`

	findProfileByEmail = `SELECT ` + profileColumns + `
		FROM profiles
		WHERE lower(email) = lower($1);`

	findProfileByID = `SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1;`

	pseudoExists = `SELECT EXISTS(SELECT 1 FROM profiles WHERE pseudo = $1);`

	countCols = `SELECT get_total_cols_count();`

	findColByID = `SELECT ` + colColumns + `
		FROM cols
		WHERE id = $1;`

	upsertCol = `INSERT INTO cols (id, nom, altitude, latitude, longitude, denivele, distance_km, pente_moyenne, pente_max, pays, region, description, difficulte, strava_segment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (nom, pays) DO UPDATE SET
			altitude = EXCLUDED.altitude,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			denivele = EXCLUDED.denivele,
			distance_km = EXCLUDED.distance_km,
			pente_moyenne = EXCLUDED.pente_moyenne,
			pente_max = EXCLUDED.pente_max,
			region = EXCLUDED.region,
			description = EXCLUDED.description,
			difficulte = EXCLUDED.difficulte,
			strava_segment_id = EXCLUDED.strava_segment_id
		RETURNING (xmax = 0) AS inserted;`

	createAscension = `INSERT INTO ascensions (id, user_id, col_id, date_ascension, temps_secondes, vitesse_moyenne_kmh, frequence_cardiaque_moyenne, puissance_moyenne_watts, strava_activity_id, validee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + ascensionColumns + `;`

	deleteAscension = `DELETE FROM ascensions
		WHERE id = $1 AND user_id = $2;`

	climbedColIDs = `SELECT DISTINCT col_id
		FROM ascensions
		WHERE user_id = $1 AND validee
		ORDER BY col_id;`

	createPin = `INSERT INTO cols_epingles (id, user_id, col_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + pinColumns + `;`

	deletePin = `DELETE FROM cols_epingles
		WHERE user_id = $1 AND col_id = $2;`

	updatePinNote = `UPDATE cols_epingles
		SET note = $3
		WHERE user_id = $1 AND col_id = $2
		RETURNING ` + pinColumns + `;`

	pinnedColIDs = `SELECT col_id
		FROM cols_epingles
		WHERE user_id = $1
		ORDER BY col_id;`

	createFavorite = `INSERT INTO favoris (id, user_id, favori_user_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, favori_user_id, created_at;`

	deleteFavorite = `DELETE FROM favoris
		WHERE user_id = $1 AND favori_user_id = $2;`

	favoriteUserIDs = `SELECT favori_user_id
		FROM favoris
		WHERE user_id = $1
		ORDER BY favori_user_id;`

	statisticsByUser = `SELECT ` + statsColumns + `
		FROM user_statistics
		WHERE id = $1;`
)

// prefixed qualifies every column of a list with a table alias.
func prefixed(alias, columns string) []string {
	parts := strings.Split(columns, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, alias+"."+strings.TrimSpace(p))
	}
	return out
}

// ColQuery narrows the cols listing.
type ColQuery struct {
	IDs        []string
	Country    string
	Difficulty string
}

func buildSelectColsQuery(q ColQuery) (string, []any, error) {
	builder := psql.Select(colColumns).From("cols")

	if len(q.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": q.IDs})
	}
	if q.Country != "" {
		builder = builder.Where(sq.Eq{"pays": q.Country})
	}
	if q.Difficulty != "" {
		builder = builder.Where(sq.Eq{"difficulte": q.Difficulty})
	}

	query, args, err := builder.OrderBy("altitude DESC", "nom").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// AscensionQuery selects ascensions of one user with their col.
type AscensionQuery struct {
	UserID        string
	ValidatedOnly bool
	Limit         uint64
}

func buildSelectAscensionsQuery(q AscensionQuery) (string, []any, error) {
	columns := append(prefixed("a", ascensionColumns), prefixed("c", colColumns)...)

	builder := psql.Select(columns...).
		From("ascensions a").
		Join("cols c ON c.id = a.col_id").
		Where(sq.Eq{"a.user_id": q.UserID})

	if q.ValidatedOnly {
		builder = builder.Where(sq.Eq{"a.validee": true})
	}
	builder = builder.OrderBy("a.date_ascension DESC", "a.created_at DESC")
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPinnedColsQuery(userID string) (string, []any, error) {
	columns := append(prefixed("p", pinColumns), prefixed("c", colColumns)...)

	query, args, err := psql.Select(columns...).
		From("cols_epingles p").
		Join("cols c ON c.id = p.col_id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("p.created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// StatisticsQuery narrows the explorer listing.
type StatisticsQuery struct {
	ExcludeUserID string
	Search        string
	UserIDs       []string
	Limit         uint64
}

func buildSelectStatisticsQuery(q StatisticsQuery) (string, []any, error) {
	builder := psql.Select(statsColumns).From("user_statistics")

	if q.ExcludeUserID != "" {
		builder = builder.Where(sq.NotEq{"id": q.ExcludeUserID})
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		builder = builder.Where(sq.ILike{"pseudo": "%" + escapeLike(s) + "%"})
	}
	if q.UserIDs != nil {
		builder = builder.Where(sq.Eq{"id": q.UserIDs})
	}
	builder = builder.OrderBy("cols_gravis DESC", "pseudo")
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
