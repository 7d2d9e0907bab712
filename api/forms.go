package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
)

const maxFormBytes = 1 << 20

// requestValues flattens a request body into string fields. The admin panel
// submits multipart or urlencoded forms while scripted clients send JSON
// objects, so all three are accepted. Query parameters are merged in last,
// which lets DELETE requests carry their id in the URL.
func requestValues(r *http.Request) (map[string]string, error) {
	values := map[string]string{}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case contentType == "application/json":
		body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes))
		if err != nil {
			return nil, errs.Malformed("request body")
		}
		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, errs.Malformed("JSON body")
		}
		for key, value := range decoded {
			values[key] = stringifyJSONValue(value)
		}

	case strings.HasPrefix(contentType, "multipart/"):
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return nil, errs.Malformed("multipart form")
		}
		for key, entries := range r.MultipartForm.Value {
			if len(entries) > 0 {
				values[key] = entries[0]
			}
		}

	default:
		// net/http skips DELETE bodies in ParseForm, so read it directly.
		body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes))
		if err != nil {
			return nil, errs.Malformed("request body")
		}
		if len(body) > 0 {
			parsed, err := url.ParseQuery(string(body))
			if err != nil {
				return nil, errs.Malformed("form body")
			}
			for key, entries := range parsed {
				if len(entries) > 0 {
					values[key] = entries[0]
				}
			}
		}
	}

	for key, entries := range r.URL.Query() {
		if len(entries) > 0 {
			values[key] = entries[0]
		}
	}

	return values, nil
}

func stringifyJSONValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		// Arrays and nested objects are re-encoded so list fields like
		// images survive the flattening.
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

func optString(values map[string]string, key string) *string {
	value, ok := values[key]
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// parseImages reads an ordered image list from an "images" JSON array,
// falling back to a single legacy "image_url" value.
func parseImages(values map[string]string) (models.ImageList, error) {
	if raw, ok := values["images"]; ok && strings.TrimSpace(raw) != "" {
		raw = strings.TrimSpace(raw)
		if strings.HasPrefix(raw, "[") {
			var images models.ImageList
			if err := json.Unmarshal([]byte(raw), &images); err != nil {
				return nil, errs.NewBadRequestError("images must be a JSON array of URLs")
			}
			return images, nil
		}
		return models.ImageList{raw}, nil
	}
	if single := optString(values, "image_url"); single != nil {
		return models.ImageList{*single}, nil
	}
	return nil, nil
}

func parseEntityID(values map[string]string) (uint, error) {
	raw, ok := values["id"]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, errs.NewValidationError("request", "id")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("id must be a positive integer")
	}
	return uint(id), nil
}

// validateEntity maps a validator failure onto the API error shape, naming
// the first offending field.
func validateEntity(name string, entity any) error {
	if err := models.Validate(entity); err != nil {
		field := models.RequiredFieldError(err)
		if field == "" {
			return errs.BadRequest("invalid " + name)
		}
		return errs.NewValidationError(name, field)
	}
	return nil
}

func projectFromValues(values map[string]string) *models.Project {
	return &models.Project{
		Name:    values["name"],
		LogoURL: optString(values, "logo_url"),
		Link:    optString(values, "link"),
	}
}

func eventFromValues(values map[string]string) (*models.Event, error) {
	images, err := parseImages(values)
	if err != nil {
		return nil, err
	}
	return &models.Event{
		Name:        values["name"],
		EventDate:   optString(values, "event_date"),
		Location:    optString(values, "location"),
		Link:        optString(values, "link"),
		Description: optString(values, "description"),
		Images:      images,
	}, nil
}

func newsFromValues(values map[string]string) (*models.News, error) {
	images, err := parseImages(values)
	if err != nil {
		return nil, err
	}
	return &models.News{
		Title:       values["title"],
		Description: values["description"],
		Images:      images,
	}, nil
}

func blogFromValues(values map[string]string) *models.Blog {
	return &models.Blog{
		Title:    values["title"],
		Excerpt:  values["excerpt"],
		Author:   values["author"],
		ImageURL: optString(values, "image_url"),
	}
}

func joinRequestFromValues(values map[string]string) *models.JoinRequest {
	return &models.JoinRequest{
		FullName: values["full_name"],
		Email:    optString(values, "email"),
		Whatsapp: optString(values, "whatsapp"),
		Country:  optString(values, "country"),
		Company:  optString(values, "company"),
	}
}
