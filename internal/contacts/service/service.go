package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

// Service owns the per-user address book. Every operation is scoped to the
// owner's user ID; a contact belonging to someone else is indistinguishable
// from a missing one.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, f repo.ContactFilter) ([]model.Contact, error)
	Get(ctx context.Context, id, userID uuid.UUID) (model.Contact, error)
	Create(ctx context.Context, userID uuid.UUID, in dto.ContactDTO) (model.Contact, error)
	Update(ctx context.Context, id, userID uuid.UUID, in dto.ContactDTO) (model.Contact, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type contactService struct {
	contacts repo.ContactRepo
	v        *validator.Validate
}

func New(cr repo.ContactRepo, v *validator.Validate) Service {
	return &contactService{contacts: cr, v: v}
}

const defaultListLimit = 10

func (s *contactService) List(ctx context.Context, userID uuid.UUID, f repo.ContactFilter) ([]model.Contact, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = defaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.contacts.ListContacts(ctx, userID, f)
}

func (s *contactService) Get(ctx context.Context, id, userID uuid.UUID) (model.Contact, error) {
	return s.contacts.GetContact(ctx, id, userID)
}

func (s *contactService) Create(ctx context.Context, userID uuid.UUID, in dto.ContactDTO) (model.Contact, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Contact{}, customErrors.NewInvalidArgument(err.Error())
	}
	contact := model.Contact{
		ID:          uuid.New(),
		Name:        in.Name,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		BirthDate:   in.BirthDate,
		Rest:        in.Rest,
		UserID:      userID,
	}
	return s.contacts.CreateContact(ctx, contact)
}

func (s *contactService) Update(ctx context.Context, id, userID uuid.UUID, in dto.ContactDTO) (model.Contact, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Contact{}, customErrors.NewInvalidArgument(err.Error())
	}
	contact, err := s.contacts.GetContact(ctx, id, userID)
	if err != nil {
		return model.Contact{}, err
	}
	contact.Name = in.Name
	contact.LastName = in.LastName
	contact.Email = in.Email
	contact.PhoneNumber = in.PhoneNumber
	contact.BirthDate = in.BirthDate
	contact.Rest = in.Rest
	return s.contacts.UpdateContact(ctx, contact)
}

func (s *contactService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.contacts.DeleteContact(ctx, id, userID)
}
