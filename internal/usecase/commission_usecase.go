package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	"strings"
	"time"
)

const providerStatusApproved = "approved"

var (
	ErrPaymentNotFound             = errors.New("commission not found")
	ErrInvalidPaymentID            = errors.New("invalid commission id")
	ErrInvalidPaymentStatus        = errors.New("invalid commission status")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrPaymentForbidden            = errors.New("commission is payable by another owner")
	ErrPaymentNotPending           = errors.New("commission is not pending")
	ErrPaymentDeclined             = errors.New("payment declined")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

type PayCommissionCommand struct {
	PaymentID       string
	OwnerID         string
	PaymentMethodID string
	Token           string
	Installments    int
	PayerEmail      string
}

// ICommissionUseCase exposes the commissions owners owe the platform and their
// settlement through the payment gateway.
type ICommissionUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error)
	Pay(ctx context.Context, cmd PayCommissionCommand) (entities.Payment, error)
}

type CommissionUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *CommissionUseCase {
	return &CommissionUseCase{repo: repo, gateway: gateway, now: time.Now}
}

func (u *CommissionUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *CommissionUseCase) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	switch filter.Status {
	case "", entities.PaymentStatusPending, entities.PaymentStatusPaid:
	default:
		return nil, ErrInvalidPaymentStatus
	}
	return u.repo.List(ctx, filter)
}

// Pay charges a pending commission to its owner. The amount always comes from
// the stored commission, never from the caller.
func (u *CommissionUseCase) Pay(ctx context.Context, cmd PayCommissionCommand) (entities.Payment, error) {
	id := strings.TrimSpace(cmd.PaymentID)
	log.Printf("[commission][usecase] pay start commission_id=%q owner_id=%q", id, cmd.OwnerID)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if strings.TrimSpace(cmd.PaymentMethodID) == "" {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		log.Printf("[commission][usecase] gateway not configured commission_id=%s", id)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[commission][usecase] failed loading commission commission_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.PayableBy != strings.TrimSpace(cmd.OwnerID) {
		log.Printf("[commission][usecase] payer mismatch commission_id=%s payable_by=%s owner_id=%s", id, p.PayableBy, cmd.OwnerID)
		return entities.Payment{}, ErrPaymentForbidden
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, ErrPaymentNotPending
	}

	installments := cmd.Installments
	if installments <= 0 {
		installments = 1
	}
	receipt, err := u.gateway.Charge(ctx, interfaces.CommissionCharge{
		ExternalReference: p.ID,
		Amount:            p.Amount,
		Description:       fmt.Sprintf("LOKI commission %s", p.ContactID),
		PaymentMethodID:   strings.TrimSpace(cmd.PaymentMethodID),
		Token:             strings.TrimSpace(cmd.Token),
		Installments:      installments,
		PayerEmail:        strings.TrimSpace(cmd.PayerEmail),
	})
	if err != nil {
		log.Printf("[commission][usecase] payment gateway failed commission_id=%s err=%v", id, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	if receipt.Status != providerStatusApproved {
		log.Printf("[commission][usecase] charge not approved commission_id=%s provider_payment_id=%s provider_status=%s", id, receipt.PaymentID, receipt.Status)
		return entities.Payment{}, fmt.Errorf("%w: provider status %q", ErrPaymentDeclined, receipt.Status)
	}

	paid, err := u.repo.MarkPaid(ctx, p.ID, receipt, u.now().UTC())
	if err != nil {
		// The provider already captured the charge; the provider id is what
		// support needs to reconcile it by hand.
		log.Printf("[commission][usecase] mark paid failed after approved charge commission_id=%s provider_payment_id=%s err=%v", id, receipt.PaymentID, err)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Payment{}, ErrPaymentNotPending
		}
		return entities.Payment{}, err
	}
	log.Printf("[commission][usecase] pay success commission_id=%s provider_payment_id=%s amount=%d", paid.ID, receipt.PaymentID, paid.Amount)
	return paid, nil
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
