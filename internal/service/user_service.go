package service

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

// UserDraft is the input for creating a user.
type UserDraft struct {
	Name  string         `json:"name" validate:"required"`
	Email string         `json:"email" validate:"required"`
	Plan  model.PlanTier `json:"plan"`
}

// UserPatch is a partial update; nil fields keep the existing value.
type UserPatch struct {
	Name   *string           `json:"name,omitempty"`
	Email  *string           `json:"email,omitempty"`
	Status *model.UserStatus `json:"status,omitempty"`
	Plan   *model.PlanTier   `json:"plan,omitempty"`
}

// UserService covers every user mutation plus the CSV export.
type UserService interface {
	Add(draft UserDraft) (model.User, error)
	Edit(id int, patch UserPatch) (model.User, error)
	// Delete removes a user by id. Deleting an absent id is a no-op; the
	// user views are invalidated either way.
	Delete(id int)
	ExportCSV(w io.Writer) error
}

type userService struct {
	store    repository.Store
	views    view.Invalidator
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

// NewUserService creates a UserService backed by the given store.
func NewUserService(store repository.Store, views view.Invalidator, logger zerolog.Logger) UserService {
	return &userService{
		store:    store,
		views:    views,
		validate: validator.New(),
		log:      logger.With().Str("service", "UserService").Logger(),
		now:      time.Now,
	}
}

func (s *userService) Add(draft UserDraft) (model.User, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	if err := s.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.log.Warn().Str("field", verrs[0].Field()).Msg("rejected user draft")
			return model.User{}, &ValidationError{Field: strings.ToLower(verrs[0].Field())}
		}
		return model.User{}, err
	}
	if draft.Plan == "" {
		draft.Plan = model.TierBasic
	}

	u := s.store.InsertUser(model.User{
		Name:         draft.Name,
		Email:        draft.Email,
		Status:       model.StatusActive,
		LastActivity: s.now(),
		Plan:         draft.Plan,
	})
	s.log.Info().Int("user_id", u.ID).Msg("user added")
	s.views.Invalidate(view.TagUsers)
	return u, nil
}

func (s *userService) Edit(id int, patch UserPatch) (model.User, error) {
	u, ok := s.store.User(id)
	if !ok {
		return model.User{}, ErrUserNotFound
	}

	if patch.Name != nil {
		u.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		u.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	if patch.Plan != nil {
		u.Plan = *patch.Plan
	}
	if u.Name == "" {
		return model.User{}, &ValidationError{Field: "name"}
	}
	if u.Email == "" {
		return model.User{}, &ValidationError{Field: "email"}
	}

	s.store.UpdateUser(u)
	s.log.Info().Int("user_id", u.ID).Msg("user updated")
	s.views.Invalidate(view.TagUsers)
	return u, nil
}

func (s *userService) Delete(id int) {
	if removed := s.store.RemoveUser(id); removed {
		s.log.Info().Int("user_id", id).Msg("user deleted")
	} else {
		s.log.Debug().Int("user_id", id).Msg("delete of absent user ignored")
	}
	s.views.Invalidate(view.TagUsers)
}

func (s *userService) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "email", "status", "plan", "last_activity"}); err != nil {
		return err
	}
	for _, u := range s.store.Users() {
		record := []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Email,
			string(u.Status),
			string(u.Plan),
			u.LastActivity.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
