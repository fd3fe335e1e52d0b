package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
	profileClient "github.com/m04kA/SBM-BookingService/internal/integrations/profileservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	catalogRepo   CatalogRepository
	salonRepo     SalonRepository
	profileClient ProfileServiceClient
	codeGen       CodeGenerator
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	salonRepo SalonRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogRepo:   catalogRepo,
		salonRepo:     salonRepo,
		profileClient: profileClient,
		codeGen:       &UUIDCodeGenerator{},
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// UUIDCodeGenerator генерирует коды подтверждения на основе UUID v4
type UUIDCodeGenerator struct{}

// NewCode возвращает новый код подтверждения
func (g *UUIDCodeGenerator) NewCode() string {
	return uuid.NewString()
}

// Execute выполняет use case создания бронирования.
// Доступность слота перед вставкой повторно НЕ проверяется: клиент выбирает
// слот из свежевычисленной сетки, а гонку двух одновременных записей
// разрешает constraint БД. Проигравшая вставка получает ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, salon=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что момент начала не в прошлом
	if err := validateBookingStart(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking start validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем существование салона
	if _, err := uc.salonRepo.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 5. Получаем услугу - источник длительности, имени и цены
	treatment, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(treatment, req.SalonID); err != nil {
		uc.logger.Warn("CreateBooking: service id=%d rejected for salon id=%d: %v",
			req.ServiceID, req.SalonID, err)
		return nil, err
	}

	// 6. Получаем профиль клиента с graceful degradation:
	// недоступность ProfileService не блокирует запись, бронирование
	// создается без денормализованных контактных данных
	var clientName, clientPhone *string
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) || errors.Is(err, profileClient.ErrServiceDegraded) {
			uc.logger.Warn("CreateBooking: proceeding without client profile for client_id=%d: %v",
				req.ClientID, err)
		} else {
			uc.logger.Error("CreateBooking: failed to get profile for client_id=%d: %v", req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client profile: %v", ErrInternal, err)
		}
	} else {
		name := profile.FullName()
		clientName = &name
		clientPhone = &profile.Phone
	}

	// 7. Создаем бронирование с денормализацией данных услуги и клиента
	booking := &domain.Booking{
		ClientID:         req.ClientID,
		SalonID:          req.SalonID,
		ServiceID:        req.ServiceID,
		BookingDate:      req.Date,
		StartTime:        req.StartTime,
		DurationMinutes:  treatment.DurationMinutes,
		Status:           domain.StatusConfirmed,
		ConfirmationCode: uc.codeGen.NewCode(),
		// Денормализация данных услуги
		ServiceName:  treatment.Name,
		ServicePrice: treatment.Price,
		// Денормализация данных клиента
		ClientName:  clientName,
		ClientPhone: clientPhone,
		// Заметки
		Notes: req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken for salon id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.SalonID)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, confirmation_code=%s",
		created.ID, created.ConfirmationCode)

	return &Response{
		ID:               created.ID,
		ClientID:         created.ClientID,
		SalonID:          created.SalonID,
		ServiceID:        created.ServiceID,
		BookingDate:      created.BookingDate,
		StartTime:        created.StartTime,
		DurationMinutes:  created.DurationMinutes,
		Status:           string(created.Status),
		ConfirmationCode: created.ConfirmationCode,
		Confirmation:     buildConfirmation(created),
		ServiceName:      created.ServiceName,
		ServicePrice:     created.ServicePrice,
		ClientName:       created.ClientName,
		ClientPhone:      created.ClientPhone,
		Notes:            created.Notes,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}

// buildConfirmation собирает человекочитаемое подтверждение записи
func buildConfirmation(booking *domain.Booking) string {
	return fmt.Sprintf("Вы записаны: %s, %s в %s. Код подтверждения: %s",
		booking.ServiceName,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.ConfirmationCode,
	)
}
