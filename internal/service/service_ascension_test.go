package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const galibierID = "0190f7a0-0000-7000-8000-000000000002"

func newTestAscensionSvc(t *testing.T) (AscensionService, storageMocks) {
	storages, m := newStorageMocks(t)
	inner := NewAscensionService(storages, logger.Nop())
	return NewAscensionValidationService(validators.NewDomainValidator()).Wrap(inner), m
}

func TestAscensionService_Log(t *testing.T) {
	svc, m := newTestAscensionSvc(t)
	day := time.Now().AddDate(0, 0, -3)

	m.ascensions.EXPECT().CreateAscension(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Ascension) (models.Ascension, error) {
			assert.Equal(t, "me", a.UserID)
			assert.True(t, a.Validated)
			assert.Empty(t, a.ID)
			a.ID = "a1"
			return a, nil
		},
	)

	got, err := svc.Log(context.Background(), "me", models.Ascension{ID: "forged", UserID: "someone-else", ColID: galibierID, Date: day})
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestAscensionService_Log_Validation(t *testing.T) {
	negative := -5
	tests := []struct {
		name      string
		ascension models.Ascension
		wantErr   error
	}{
		{"future date", models.Ascension{ColID: galibierID, Date: time.Now().Add(48 * time.Hour)}, validators.ErrInvalidDate},
		{"missing date", models.Ascension{ColID: galibierID}, validators.ErrInvalidDate},
		{"bad col id", models.Ascension{ColID: "galibier", Date: time.Now().Add(-time.Hour)}, validators.ErrInvalidColID},
		{"negative duration", models.Ascension{ColID: galibierID, Date: time.Now().Add(-time.Hour), DurationSeconds: &negative}, validators.ErrInvalidMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAscensionSvc(t)

			_, err := svc.Log(context.Background(), "me", tt.ascension)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAscensionService_Delete_NotFound(t *testing.T) {
	svc, m := newTestAscensionSvc(t)

	m.ascensions.EXPECT().DeleteAscension(gomock.Any(), "me", "a1").Return(store.ErrAscensionNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "me", "a1"), store.ErrAscensionNotFound)
}

func TestAscensionService_Recent_DefaultLimit(t *testing.T) {
	svc, m := newTestAscensionSvc(t)

	m.ascensions.EXPECT().ListAscensions(gomock.Any(), store.AscensionQuery{UserID: "me", Limit: DefaultRecentLimit}).Return(nil, nil)

	_, err := svc.Recent(context.Background(), "me", 0)
	require.NoError(t, err)
}
