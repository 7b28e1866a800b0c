package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/satyadharma/registration-service/internal/domain/entity"
	repo "github.com/satyadharma/registration-service/internal/domain/repository"
	"github.com/satyadharma/registration-service/internal/notification"
	"github.com/satyadharma/registration-service/pkg/helpers"
)

// RegisterUser orchestrates one registration: validate the payload, build
// the entity, persist it, fire the welcome notification, shape the output.
// It owns no storage or transport; collaborators arrive via the constructor.
type RegisterUser struct {
	Repo     repo.UserRepository
	Notifier notification.Notifier
	Logger   *logrus.Logger

	// Optional user-directory indexing; nil ES disables it.
	ES           *elasticsearch.Client
	ESUsersIndex string
}

func NewRegisterUser(r repo.UserRepository, n notification.Notifier, logger *logrus.Logger) *RegisterUser {
	return &RegisterUser{Repo: r, Notifier: n, Logger: logger}
}

// Execute runs the full pipeline once. It either completes every step or
// aborts at the first failing one; steps 1-3 propagate their error
// unchanged and nothing before a failure is retried here.
//
// A notification failure after a successful save does NOT fail the call:
// the production notifier publishes to a durable queue, so delivery retry
// belongs to the email worker. The failure is logged and the registration
// stands.
func (uc *RegisterUser) Execute(ctx context.Context, req RegistrationRequest) (*UserResponse, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := entity.NewUser(req.Name, req.Email, hash)

	if err := uc.Repo.Save(ctx, u); err != nil {
		return nil, err
	}

	if err := uc.Notifier.SendWelcomeEmail(ctx, u.Email, u.Name); err != nil {
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email not enqueued")
		}
	}

	// Best-effort directory index; never blocks the registration result.
	_ = uc.indexUser(ctx, u)

	return NewUserResponse(u), nil
}

func (uc *RegisterUser) indexUser(ctx context.Context, u *entity.User) error {
	if uc.ES == nil || uc.ESUsersIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: uc.ESUsersIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, uc.ES)
	if err != nil {
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && uc.Logger != nil {
		uc.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}
