package store

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// CreateUser hashes the password and inserts a new enabled account.
// Returns ErrDuplicateUser if the username is taken; the existing row is
// left untouched in that case.
func (s *Store) CreateUser(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHashing, err)
	}

	query := `INSERT INTO auth (username, password, enabled) VALUES (?, ?, ?)`
	if _, err := s.DB.Exec(query, username, string(hash), true); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateUser, username)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// VerifyLogin checks a plaintext password against the stored hash. An
// unknown username yields (false, nil), not an error, so callers cannot
// distinguish it from a wrong password.
func (s *Store) VerifyLogin(username, password string) (bool, error) {
	var hash string
	query := `SELECT password FROM auth WHERE username = ?`
	err := s.DB.QueryRow(query, username).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrHashing, err)
}

// CreateUserInteractive prompts on the terminal for the username (when not
// pre-supplied) and for the password twice, then creates the account.
// Mismatched password entries return ErrPasswordMismatch so the caller can
// retry or report instead of the process dying.
func (s *Store) CreateUserInteractive(username string) error {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return errors.New("username must not be empty")
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Repeat password: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return ErrPasswordMismatch
	}

	return s.CreateUser(username, string(first))
}
