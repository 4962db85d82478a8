package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
	"github.com/aussiebroadwan/partsdash/pkg/httpx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"
)

const maxSettingsBody = 64 << 10

const (
	msgRetrieved    = "settings retrieved"
	msgUpdated      = "settings updated"
	msgReset        = "settings reset to defaults"
	msgUnauthorized = "authentication required"
	msgInternal     = "internal server error"
)

// SettingsManager is everything the handler needs from the service layer.
type SettingsManager interface {
	GetUserSettings(ctx context.Context, userID string) (domain.Settings, error)
	UpdateUserSettings(ctx context.Context, userID string, update domain.SettingsUpdate) (domain.Settings, error)
	ResetUserSettings(ctx context.Context, userID string) (domain.Settings, error)
}

type SettingsHandler struct {
	Settings SettingsManager
}

// HandleGet returns the caller's settings, creating defaults on first access.
//
//	@Summary		Get settings
//	@Description	Returns the caller's settings document. A default document is created on first access.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	settingssdk.Envelope[settingssdk.SettingsDocument]
//	@Failure		401	{object}	settingssdk.Envelope[any]
//	@Failure		500	{object}	settingssdk.Envelope[any]
//	@Router			/v1/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	doc, err := h.Settings.GetUserSettings(ctx, userID)
	if err != nil {
		log.Error("failed to get settings", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeDocument(w, doc, msgRetrieved)
}

// HandleUpdate replaces each section present in the body.
//
//	@Summary		Update settings
//	@Description	Replaces every section present in the body. Sections are replaced wholesale; fields omitted from a supplied section are dropped.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		settingssdk.SettingsUpdate	true	"Sections to replace"
//	@Success		200		{object}	settingssdk.Envelope[settingssdk.SettingsDocument]
//	@Failure		401		{object}	settingssdk.Envelope[any]
//	@Failure		500		{object}	settingssdk.Envelope[any]
//	@Router			/v1/settings [put].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var body settingssdk.SettingsUpdate
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingsBody)).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		// malformed bodies share the generic failure response
		log.Error("failed to decode settings update", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	doc, err := h.Settings.UpdateUserSettings(ctx, userID, toDomainUpdate(body))
	if err != nil {
		log.Error("failed to update settings", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeDocument(w, doc, msgUpdated)
}

// HandleReset restores the default settings.
//
//	@Summary		Reset settings
//	@Description	Deletes the caller's settings document and recreates it with defaults.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	settingssdk.Envelope[settingssdk.SettingsDocument]
//	@Failure		401	{object}	settingssdk.Envelope[any]
//	@Failure		500	{object}	settingssdk.Envelope[any]
//	@Router			/v1/settings/reset [post].
func (h *SettingsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	doc, err := h.Settings.ResetUserSettings(ctx, userID)
	if err != nil {
		log.Error("failed to reset settings", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeDocument(w, doc, msgReset)
}

func writeDocument(w http.ResponseWriter, doc domain.Settings, msg string) {
	httpx.WriteJSON(w, http.StatusOK, settingssdk.Envelope[settingssdk.SettingsDocument]{
		Success: true,
		Data:    toDocument(doc),
		Message: msg,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, settingssdk.Envelope[any]{Success: false, Message: msg})
}

func toDocument(s domain.Settings) settingssdk.SettingsDocument {
	return settingssdk.SettingsDocument{
		ID:            s.ID,
		UserID:        s.UserID,
		Theme:         settingssdk.Theme(s.Theme),
		Notifications: settingssdk.Notifications(s.Notifications),
		Preferences:   settingssdk.Preferences(s.Preferences),
		Advanced:      settingssdk.Advanced(s.Advanced),
		CreatedAt:     s.CreatedAt,
		LastUpdated:   s.LastUpdated,
	}
}

func toDomainUpdate(u settingssdk.SettingsUpdate) domain.SettingsUpdate {
	return domain.SettingsUpdate{
		Theme:         (*domain.Theme)(u.Theme),
		Notifications: (*domain.Notifications)(u.Notifications),
		Preferences:   (*domain.Preferences)(u.Preferences),
		Advanced:      (*domain.Advanced)(u.Advanced),
	}
}
