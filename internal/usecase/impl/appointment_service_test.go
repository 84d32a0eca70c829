package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petcare/internal/domain/entity"
	mockRepo "petcare/internal/mocks/repository"
	"petcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentServiceFixtures struct {
	service  usecase.AppointmentUsecase
	apptRepo *mockRepo.MockAppointmentRepository
}

func createTestAppointmentService(t *testing.T) appointmentServiceFixtures {
	apptRepo := mockRepo.NewMockAppointmentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return appointmentServiceFixtures{
		service:  NewAppointmentService(apptRepo, logger),
		apptRepo: apptRepo,
	}
}

func TestAppointmentService_FindNextByOwnerID(t *testing.T) {
	fx := createTestAppointmentService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx.service.(*appointmentService).now = func() time.Time { return now }

	ctx := context.Background()
	status := entity.StatusConfirmed
	upcoming := []*entity.Appointment{
		{ID: 1, PetID: 2, OwnerID: 7, VetID: 3, ApptTime: now.Add(time.Hour), Status: &status},
		{ID: 2, PetID: 2, OwnerID: 7, VetID: 3, ApptTime: now.Add(2 * time.Hour)},
	}

	fx.apptRepo.EXPECT().
		FindUpcomingByOwnerID(ctx, int64(7), now, []entity.AppointmentStatus(nil), 2).
		Return(upcoming, nil)

	out, err := fx.service.FindNextByOwnerID(ctx, 7)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), *out[0].ID)
	assert.Equal(t, entity.StatusConfirmed, *out[0].Status)
}

func TestAppointmentService_FindByOwnerID(t *testing.T) {
	fx := createTestAppointmentService(t)

	ctx := context.Background()
	fx.apptRepo.EXPECT().
		FindByOwnerID(ctx, int64(7)).
		Return([]*entity.Appointment{{ID: 1, OwnerID: 7, PetID: 2, VetID: 3}}, nil)

	out, err := fx.service.FindByOwnerID(ctx, 7)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), *out[0].OwnerID)
}

func TestAppointmentService_FindByPetID_Empty(t *testing.T) {
	fx := createTestAppointmentService(t)

	ctx := context.Background()
	fx.apptRepo.EXPECT().FindByPetID(ctx, int64(2)).Return(nil, nil)

	out, err := fx.service.FindByPetID(ctx, 2)

	require.NoError(t, err)
	assert.Empty(t, out)
}
