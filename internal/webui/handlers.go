package webui

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
	"github.com/blast007/wifi-eap-profiles/pkg/profilestore"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

func (wui *WebUI) loginSubmitHandler(c echo.Context) error {
	sess, _ := session.Get(sessionName, c)

	// Fetch the information from the form
	username := c.FormValue("username")
	password := c.FormValue("password")

	ok, err := wui.db.CheckPassword(username, password)
	if err != nil {
		wui.log.Error("error processing login", zap.String("username", username), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "There was an error processing the login.")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "The username and password provided are not valid.")
	}

	sess.Values["username"] = username
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return c.JSON(http.StatusOK, map[string]string{"username": username})
}

func (wui *WebUI) logoutHandler(c echo.Context) error {
	// Clear the user session data
	sess, _ := session.Get(sessionName, c)
	delete(sess.Values, "username")
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return c.NoContent(http.StatusNoContent)
}

/********************\
* Profile Management *
\********************/

func documents(profiles []*eap.Profile) []eap.Document {
	docs := make([]eap.Document, 0, len(profiles))
	for _, p := range profiles {
		docs = append(docs, eap.NewDocument(p))
	}
	return docs
}

func (wui *WebUI) profilesHandler(c echo.Context) error {
	profiles, err := wui.profiles.List()
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, documents(profiles))
}

func (wui *WebUI) profileExportHandler(c echo.Context) error {
	profiles, err := wui.profiles.List()
	if err != nil {
		return errorResponse(err)
	}
	out, err := eap.MarshalProfiles(profiles)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/yaml", out)
}

func (wui *WebUI) profileFindHandler(c echo.Context) error {
	ssid := c.Param("ssid")
	p, err := wui.profiles.Find(ssid)
	if err != nil {
		return errorResponse(err)
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no profile for ssid "+ssid)
	}
	return c.JSON(http.StatusOK, eap.NewDocument(p))
}

func (wui *WebUI) profileCreateHandler(c echo.Context) error {
	var doc eap.Document
	if err := c.Bind(&doc); err != nil {
		return err
	}
	p, err := doc.Profile()
	if err != nil {
		return errorResponse(errors.Wrap(eap.ErrInvalidProfile, err.Error()))
	}

	id, err := wui.profiles.Create(p)
	if err != nil {
		return errorResponse(err)
	}

	wui.log.Info("added profile", zap.String("id", id), zap.String("profile", p.DisplayName()))
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"profileId": id,
		"warnings":  p.Warnings(),
	})
}

func (wui *WebUI) profileDeleteHandler(c echo.Context) error {
	if err := wui.profiles.RemoveByID(c.Param("id")); err != nil {
		return errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (wui *WebUI) profileDeleteBySSIDHandler(c echo.Context) error {
	if err := wui.profiles.RemoveBySSID(c.Param("ssid")); err != nil {
		return errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

/**************\
* Trust Groups *
\**************/

type trustGroupRequest struct {
	Name   *string `json:"name"`
	Anchor string  `json:"anchor"`
}

func (wui *WebUI) trustGroupCreateHandler(c echo.Context) error {
	var req trustGroupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	var anchor []byte
	if req.Anchor != "" {
		certs, err := eap.DecodeCertificates([]byte(req.Anchor))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid anchor: "+err.Error())
		}
		anchor = certs[0]
	}

	ref, err := wui.trustGroups.CreateApplicationTrustGroup(req.Name, anchor)
	if err != nil {
		return errorResponse(err)
	}
	defer ref.Release()

	resp := map[string]interface{}{}
	if name, ok := ref.Name(); ok {
		resp["name"] = name
	}
	if anchor != nil {
		label, err := eap.CertificateLabel(anchor)
		if err != nil {
			return err
		}
		resp["label"] = label
		resp["fingerprint"] = eap.Fingerprint(anchor)
	}
	return c.JSON(http.StatusCreated, resp)
}

// errorResponse maps core errors to HTTP status codes
func errorResponse(err error) error {
	code := http.StatusInternalServerError
	var svcErr *trustgroup.ServiceError
	switch {
	case errors.Is(err, eap.ErrInvalidProfile), errors.Is(err, eap.ErrUnknownIdentifier):
		code = http.StatusBadRequest
	case errors.Is(err, profilestore.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, profilestore.ErrStoreRejected):
		code = http.StatusConflict
	case errors.Is(err, profilestore.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	case errors.As(err, &svcErr):
		code = http.StatusBadGateway
	}
	return &echo.HTTPError{Code: code, Message: err.Error(), Internal: err}
}
