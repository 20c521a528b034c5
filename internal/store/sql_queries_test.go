// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectColsQuery_NoFilters(t *testing.T) {
	query, args, err := buildSelectColsQuery(ColQuery{})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY altitude DESC, nom"))
}

func Test_buildSelectColsQuery_AllFilters(t *testing.T) {
	query, args, err := buildSelectColsQuery(ColQuery{
		IDs:        []string{"a", "b"},
		Country:    "France",
		Difficulty: "hc",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "id IN ($1,$2)")
	assert.Contains(t, query, "pays = $3")
	assert.Contains(t, query, "difficulte = $4")
	assert.Equal(t, []any{"a", "b", "France", "hc"}, args)
}

func Test_buildSelectAscensionsQuery(t *testing.T) {
	query, args, err := buildSelectAscensionsQuery(AscensionQuery{UserID: "u-1", ValidatedOnly: true, Limit: 5})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from ascensions a join cols c on c.id = a.col_id")
	require.Contains(t, q, "a.validee = $2")
	require.Contains(t, q, "limit 5")
	require.Contains(t, q, "c.difficulte")
	assert.Equal(t, []any{"u-1", true}, args)
}

func Test_buildSelectAscensionsQuery_AllAscensions(t *testing.T) {
	query, args, err := buildSelectAscensionsQuery(AscensionQuery{UserID: "u-1"})
	require.NoError(t, err)

	assert.NotContains(t, query, "validee =")
	assert.NotContains(t, strings.ToLower(query), "limit")
	assert.Len(t, args, 1)
}

func Test_buildSelectPinnedColsQuery(t *testing.T) {
	query, args, err := buildSelectPinnedColsQuery("u-1")
	require.NoError(t, err)

	assert.Contains(t, query, "p.note")
	assert.Contains(t, query, "ORDER BY p.created_at DESC")
	assert.Equal(t, []any{"u-1"}, args)
}

func Test_buildSelectStatisticsQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        StatisticsQuery
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "everyone",
			query:        StatisticsQuery{},
			wantContains: []string{"FROM user_statistics ORDER BY cols_gravis DESC, pseudo"},
			wantArgs:     nil,
		},
		{
			name:         "exclude self and search",
			query:        StatisticsQuery{ExcludeUserID: "me", Search: "  an "},
			wantContains: []string{"id <> $1", "pseudo ILIKE $2"},
			wantArgs:     []any{"me", "%an%"},
		},
		{
			name:         "like wildcards are escaped",
			query:        StatisticsQuery{Search: "50%_x"},
			wantContains: []string{"pseudo ILIKE $1"},
			wantArgs:     []any{`%50\%\_x%`},
		},
		{
			name:         "explicit empty id list matches nothing",
			query:        StatisticsQuery{UserIDs: []string{}},
			wantContains: []string{"(1=0)"},
			wantArgs:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectStatisticsQuery(tt.query)
			require.NoError(t, err)
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_prefixed(t *testing.T) {
	assert.Equal(t, []string{"p.id", "p.user_id", "p.col_id", "p.note", "p.created_at"}, prefixed("p", pinColumns))
}
