package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/catalog"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
	"github.com/mgeorge47/canteen-console-api/pkg/log"
	"github.com/mgeorge47/canteen-console-api/pkg/middleware"
)

func GetMenuGroups(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		var (
			groups []posdomain.MenuGroup
			err    error
		)

		// Search is applied to the already-fetched tree; it never refetches.
		if q := r.URL.Query().Get("q"); q != "" {
			groups, err = service.Search(r.Context(), sess.Credential, q)
		} else {
			groups, err = service.Groups(r.Context(), sess.Credential)
		}
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("menu: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func RefreshMenu(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		if err := service.Refresh(r.Context(), sess.Credential); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func UpdateMenuItem(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		itemIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid item ID", nil)
			return
		}

		var fields posdomain.ItemFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		updated, err := service.UpdateItem(r.Context(), sess.Credential, itemID, fields)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("item_id", updated.ItemID).Info("menu: item updated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logger.WithError(err).Error("menu: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func CreateMenuItem(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		groupIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		groupID, err := strconv.ParseInt(groupIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid group ID", nil)
			return
		}

		var fields posdomain.ItemFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		created, err := service.CreateItem(r.Context(), sess.Credential, groupID, fields)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"group_id": groupID,
			"item_id":  created.ItemID,
		}).Info("menu: item created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("menu: failed to encode response")
		}
	})
}
