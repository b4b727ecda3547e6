package web

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erazemk/inventar/internal/form"
	"github.com/erazemk/inventar/internal/model"
	"github.com/erazemk/inventar/internal/store"
)

// Notices shown above the form.
const (
	NoticeGone      = "That item no longer exists."
	NoticeCreated   = "Item created successfully."
	NoticeUpdated   = "Item updated successfully."
	NoticeDeleted   = "Item deleted successfully."
	NoticeCompleted = "Action completed."
)

// Outcome is the result of handling a request: either a redirect target or a
// page to render. Exactly one of Redirect and View is set.
type Outcome struct {
	Redirect string
	View     *IndexView
}

// RedirectTo returns an Outcome that sends the browser to target.
func RedirectTo(target string) Outcome {
	return Outcome{Redirect: target}
}

// Render returns an Outcome that renders v.
func Render(v *IndexView) Outcome {
	return Outcome{View: v}
}

// IndexView is the data for the inventory page.
type IndexView struct {
	PageData
	Success string
	Notice  string
	Errors  []string

	Items   []model.Item
	Summary model.Summary

	// CreateForm refills the add form after a rejected create.
	CreateForm form.Values

	// Editing is set when the edit dialog should open on load.
	Editing   bool
	EditingID int64
	EditForm  form.Values
}

// successRedirect builds the listing URL carrying a success indicator.
func successRedirect(kind string) string {
	return "/?" + url.Values{"success": {kind}}.Encode()
}

// successNotice returns the banner text for a success indicator.
func successNotice(kind string) string {
	switch kind {
	case "":
		return ""
	case "created":
		return NoticeCreated
	case "updated":
		return NoticeUpdated
	case "deleted":
		return NoticeDeleted
	default:
		return NoticeCompleted
	}
}

// Decide handles one request against an open database. query is the URL query
// and body the parsed form body (nil for GET). Validation problems are
// returned inside the view; only persistence failures are returned as errors.
func Decide(ctx context.Context, database *sql.DB, method string, query, body url.Values) (Outcome, error) {
	view := &IndexView{PageData: PageData{Title: "Inventory"}}

	if method == http.MethodPost {
		out, handled, err := decidePost(ctx, database, body, view)
		if err != nil || handled {
			return out, err
		}
	} else {
		view.Success = successNotice(query.Get("success"))
		if err := loadEdit(ctx, database, query, view); err != nil {
			return Outcome{}, err
		}
	}

	items, err := store.ListItems(ctx, database)
	if err != nil {
		return Outcome{}, err
	}
	view.Items = items
	view.Summary = model.Summarize(items)

	return Render(view), nil
}

// decidePost applies a form submission. handled is false when the page must
// be re-rendered with the errors collected in view.
func decidePost(ctx context.Context, database *sql.DB, body url.Values, view *IndexView) (Outcome, bool, error) {
	f := form.FromValues(body)

	switch f.Action {
	case form.ActionDelete:
		if f.ID > 0 {
			if err := store.DeleteItem(ctx, database, f.ID); err != nil {
				return Outcome{}, true, err
			}
			slog.Info("item deleted", "id", f.ID)
		}
		return RedirectTo(successRedirect("deleted")), true, nil

	case form.ActionCreate, form.ActionUpdate:
		if errs := f.Validate(); len(errs) > 0 {
			view.Errors = errs
			if f.Action == form.ActionUpdate {
				view.Editing = true
				view.EditingID = f.ID
				view.EditForm = f.Submitted
			} else {
				view.CreateForm = f.Submitted
			}
			return Outcome{}, false, nil
		}

		fields, err := f.Fields()
		if err != nil {
			return Outcome{}, true, err
		}

		if f.Action == form.ActionCreate {
			id, err := store.CreateItem(ctx, database, fields)
			if err != nil {
				return Outcome{}, true, err
			}
			slog.Info("item created", "id", id, "item", fields.Name)
			return RedirectTo(successRedirect("created")), true, nil
		}

		if err := store.UpdateItem(ctx, database, f.ID, fields); err != nil {
			return Outcome{}, true, err
		}
		slog.Info("item updated", "id", f.ID, "item", fields.Name)
		return RedirectTo(successRedirect("updated")), true, nil
	}

	// Unknown actions fall through to the plain listing.
	return Outcome{}, false, nil
}

// loadEdit prepares the edit dialog for ?action=edit&id=N.
func loadEdit(ctx context.Context, database *sql.DB, query url.Values, view *IndexView) error {
	if query.Get("action") != "edit" {
		return nil
	}

	id, err := strconv.ParseInt(query.Get("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	item, err := store.GetItem(ctx, database, id)
	if err != nil {
		return err
	}
	if item == nil {
		view.Notice = NoticeGone
		return nil
	}

	view.Editing = true
	view.EditingID = item.ID
	view.EditForm = form.Values{
		Name:     item.Name,
		Category: derefString(item.Category),
	}
	if item.Quantity != nil {
		view.EditForm.Quantity = strconv.FormatInt(*item.Quantity, 10)
	}
	if item.Price != nil {
		view.EditForm.Price = item.Price.String()
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
