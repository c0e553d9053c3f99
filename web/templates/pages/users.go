package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/web/templates/shared"
)

// UsersListProps provides data for the user management page
type UsersListProps struct {
	shared.PageProps
	Users []models.User
}

// UsersList renders the user management section
func UsersList(props UsersListProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="actions"><a class="button" href="/user-management/create">New User</a></div>
<table class="data-table"><thead><tr><th>Name</th><th>Email</th><th>Role</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, user := range props.Users {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td><a href="/user-management/%d/edit">Edit</a> <form method="post" action="/user-management/%d/delete"><button type="submit">Delete</button></form></td></tr>`,
				templ.EscapeString(user.Name),
				templ.EscapeString(user.Email),
				templ.EscapeString(string(user.UserType)),
				user.ID,
				user.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}

// UserFormProps provides data for the create/edit user form
type UserFormProps struct {
	shared.PageProps
	IsEdit bool
	User   models.User
}

// UserForm renders the create/edit user form
func UserForm(props UserFormProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/user-management"
		if props.IsEdit {
			action = fmt.Sprintf("/user-management/%d/update", props.User.ID)
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="%s" class="form">
<label>Name<input name="name" value="%s" required></label>
<label>Email<input type="email" name="email" value="%s" required></label>
<label>Phone<input name="phone" value="%s"></label>
<label>Role<select name="user_type">`,
			templ.EscapeString(action),
			templ.EscapeString(props.User.Name),
			templ.EscapeString(props.User.Email),
			templ.EscapeString(props.User.Phone)); err != nil {
			return err
		}

		for _, role := range []models.UserType{models.UserTypeAdmin, models.UserTypeRecruiter, models.UserTypeMember} {
			selected := ""
			if role == props.User.UserType {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(string(role)), selected, templ.EscapeString(string(role))); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</select></label><button type="submit">Save</button></form>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}
