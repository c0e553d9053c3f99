package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitFirebase initializes the Firebase Admin SDK from a service-account
// credentials file and returns the auth client used for session handling.
func InitFirebase(credPath string) (*auth.Client, error) {
	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}
	return app.Auth(context.Background())
}

// DeleteFirebaseUser removes the auth identity for a user, used by the
// account-deletion flow after the user confirms.
func DeleteFirebaseUser(ctx context.Context, client *auth.Client, uid string) error {
	if client == nil {
		return nil
	}
	return client.DeleteUser(ctx, uid)
}
