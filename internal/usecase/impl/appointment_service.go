package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/usecase"

	"petcare/internal/errors"
)

const appointmentEntityName = "appointment"

// upcomingAppointmentsLimit caps the "next appointments" dashboard widget.
const upcomingAppointmentsLimit = 2

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	apptRepo repository.AppointmentRepository
	now      func() time.Time
	logger   *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(apptRepo repository.AppointmentRepository, logger *slog.Logger) usecase.AppointmentUsecase {
	return &appointmentService{
		apptRepo: apptRepo,
		now:      time.Now,
		logger:   logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *appointmentService) Save(ctx context.Context, dto *usecase.AppointmentDTO) (*usecase.AppointmentDTO, error) {
	srv.log(ctx).Debug("Saving appointment")

	if dto.ID != nil {
		return nil, domainerrors.IDExists(appointmentEntityName)
	}

	appt := fromAppointmentDTO(dto)
	if err := srv.apptRepo.Save(ctx, appt); err != nil {
		return nil, errors.Wrap(err, "failed to save appointment")
	}

	return toAppointmentDTO(appt), nil
}

func (srv *appointmentService) Update(ctx context.Context, id int64, dto *usecase.AppointmentDTO) (*usecase.AppointmentDTO, error) {
	srv.log(ctx).Debug("Updating appointment", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	appt := fromAppointmentDTO(dto)
	appt.ID = id
	if err := srv.apptRepo.Update(ctx, appt); err != nil {
		return nil, errors.Wrap(err, "failed to update appointment")
	}

	return toAppointmentDTO(appt), nil
}

func (srv *appointmentService) PartialUpdate(ctx context.Context, id int64, dto *usecase.AppointmentDTO) (*usecase.AppointmentDTO, error) {
	srv.log(ctx).Debug("Partially updating appointment", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	existing, err := srv.apptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.IDNotFound(appointmentEntityName)
		}

		return nil, errors.Wrap(err, "failed to load appointment for partial update")
	}

	mergeAppointmentDTO(existing, dto)
	if err := srv.apptRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update appointment")
	}

	return toAppointmentDTO(existing), nil
}

func (srv *appointmentService) FindOne(ctx context.Context, id int64) (*usecase.AppointmentDTO, error) {
	appt, err := srv.apptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.NotFoundAlert(appointmentEntityName)
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return toAppointmentDTO(appt), nil
}

func (srv *appointmentService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting appointment", slog.Int64("id", id))

	return errors.WithStack(srv.apptRepo.DeleteByID(ctx, id))
}

func (srv *appointmentService) FindByOwnerID(ctx context.Context, ownerID int64) ([]*usecase.AppointmentDTO, error) {
	appts, err := srv.apptRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by owner")
	}

	return mapAppointmentDTOs(appts), nil
}

func (srv *appointmentService) FindByPetID(ctx context.Context, petID int64) ([]*usecase.AppointmentDTO, error) {
	appts, err := srv.apptRepo.FindByPetID(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by pet")
	}

	return mapAppointmentDTOs(appts), nil
}

func (srv *appointmentService) FindNextByOwnerID(ctx context.Context, ownerID int64) ([]*usecase.AppointmentDTO, error) {
	appts, err := srv.apptRepo.FindUpcomingByOwnerID(ctx, ownerID, srv.now(), nil, upcomingAppointmentsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming appointments")
	}

	return mapAppointmentDTOs(appts), nil
}

func (srv *appointmentService) FindByCriteria(ctx context.Context, c *criteria.AppointmentCriteria, pageable repository.Pageable) (repository.Page[*usecase.AppointmentDTO], error) {
	page, err := srv.apptRepo.FindByCriteria(ctx, c, pageable)
	if err != nil {
		return repository.Page[*usecase.AppointmentDTO]{}, errors.Wrap(err, "failed to find appointments by criteria")
	}

	return repository.MapPage(page, toAppointmentDTO), nil
}

func (srv *appointmentService) CountByCriteria(ctx context.Context, c *criteria.AppointmentCriteria) (int64, error) {
	count, err := srv.apptRepo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count appointments by criteria")
	}

	return count, nil
}

func (srv *appointmentService) checkUpdateID(ctx context.Context, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.IDNull(appointmentEntityName)
	}
	if *bodyID != pathID {
		return domainerrors.IDInvalid(appointmentEntityName)
	}

	exists, err := srv.apptRepo.ExistsByID(ctx, pathID)
	if err != nil {
		return errors.Wrap(err, "failed to check appointment existence")
	}
	if !exists {
		return domainerrors.IDNotFound(appointmentEntityName)
	}

	return nil
}

func toAppointmentDTO(appt *entity.Appointment) *usecase.AppointmentDTO {
	if appt == nil {
		return nil
	}

	id := appt.ID
	petID := appt.PetID
	ownerID := appt.OwnerID
	vetID := appt.VetID
	apptTime := appt.ApptTime

	return &usecase.AppointmentDTO{
		ID:        &id,
		PetID:     &petID,
		OwnerID:   &ownerID,
		VetID:     &vetID,
		ApptTime:  &apptTime,
		Status:    appt.Status,
		CreatedAt: appt.CreatedAt,
	}
}

func mapAppointmentDTOs(appts []*entity.Appointment) []*usecase.AppointmentDTO {
	dtos := make([]*usecase.AppointmentDTO, 0, len(appts))
	for _, appt := range appts {
		dtos = append(dtos, toAppointmentDTO(appt))
	}

	return dtos
}

func fromAppointmentDTO(dto *usecase.AppointmentDTO) *entity.Appointment {
	appt := &entity.Appointment{
		Status:    dto.Status,
		CreatedAt: dto.CreatedAt,
	}
	if dto.ID != nil {
		appt.ID = *dto.ID
	}
	if dto.PetID != nil {
		appt.PetID = *dto.PetID
	}
	if dto.OwnerID != nil {
		appt.OwnerID = *dto.OwnerID
	}
	if dto.VetID != nil {
		appt.VetID = *dto.VetID
	}
	if dto.ApptTime != nil {
		appt.ApptTime = *dto.ApptTime
	}

	return appt
}

func mergeAppointmentDTO(appt *entity.Appointment, dto *usecase.AppointmentDTO) {
	if dto.PetID != nil {
		appt.PetID = *dto.PetID
	}
	if dto.OwnerID != nil {
		appt.OwnerID = *dto.OwnerID
	}
	if dto.VetID != nil {
		appt.VetID = *dto.VetID
	}
	if dto.ApptTime != nil {
		appt.ApptTime = *dto.ApptTime
	}
	if dto.Status != nil {
		appt.Status = dto.Status
	}
	if dto.CreatedAt != nil {
		appt.CreatedAt = dto.CreatedAt
	}
}
