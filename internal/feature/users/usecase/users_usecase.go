package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	authentity "college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/users/domain/entity"
)

// ProfileRepository abstracts the persistence layer for user profiles.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProfileRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, user *authentity.User) error

	// FindByEmail retrieves a user by email, or nil without error when no
	// user exists. Used for pre-create existence checks.
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)

	// FindByID retrieves a user by ID. It returns ErrUserNotFound when no
	// user exists.
	FindByID(ctx context.Context, id uint) (*authentity.User, error)

	// FindByIDAndRole retrieves a user that holds the given role.
	// It returns ErrUserNotFound when no such user exists.
	FindByIDAndRole(ctx context.Context, id uint, role authentity.Role) (*authentity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *authentity.User) error

	// DeleteByIDAndRole removes a user that holds the given role,
	// reporting whether a row was deleted.
	DeleteByIDAndRole(ctx context.Context, id uint, role authentity.Role) (bool, error)

	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role authentity.Role) ([]authentity.User, error)

	// ListStudentsOfTeacher returns the students whose course and active
	// semester match a subject taught by the teacher.
	ListStudentsOfTeacher(ctx context.Context, teacherID uint) ([]authentity.User, error)
}

// NotificationRepository abstracts the persistence layer for notifications.
type NotificationRepository interface {
	// Create persists a single notification.
	Create(ctx context.Context, n *entity.Notification) error

	// CreateBatch persists one notification per element.
	CreateBatch(ctx context.Context, ns []entity.Notification) error

	// ListByRecipient returns all notifications addressed to userID.
	ListByRecipient(ctx context.Context, userID uint) ([]entity.Notification, error)
}

// SubjectAssigner reassigns subjects to a teacher. Implemented by the
// courses feature's subject repository.
type SubjectAssigner interface {
	AssignTeacher(ctx context.Context, subjectIDs []uint, teacherID, courseID uint) error
}

// TokenRevoker invalidates a user's outstanding session tokens.
// Implemented by the auth feature's token repository.
type TokenRevoker interface {
	DeleteByUserID(ctx context.Context, userID uint) error
}

// UsersUsecase provides business logic for profile management and
// notifications.
type UsersUsecase struct {
	profiles      ProfileRepository
	notifications NotificationRepository
	subjects      SubjectAssigner
	tokens        TokenRevoker
}

// NewUsersUsecase creates a new UsersUsecase with the given collaborators.
func NewUsersUsecase(profiles ProfileRepository, notifications NotificationRepository,
	subjects SubjectAssigner, tokens TokenRevoker) *UsersUsecase {
	return &UsersUsecase{
		profiles:      profiles,
		notifications: notifications,
		subjects:      subjects,
		tokens:        tokens,
	}
}

// ProfileInput carries the fields for creating or editing a profile.
type ProfileInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Contact  string
	CourseID *uint
	// SemesterID is the student's active semester; ignored for teachers.
	SemesterID *uint
	// Subjects lists subject IDs to reassign to a teacher on edit.
	Subjects []uint
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// createProfile registers a new user with the given role.
func (u *UsersUsecase) createProfile(ctx context.Context, in ProfileInput, role authentity.Role) (*authentity.User, error) {
	existing, err := u.profiles.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &authentity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Address:  in.Address,
		Contact:  in.Contact,
		Role:     role,
		CourseID: in.CourseID,
	}
	if role == authentity.RoleStudent {
		user.SemesterID = in.SemesterID
	}

	if err := u.profiles.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTeacher registers a new teacher profile.
func (u *UsersUsecase) CreateTeacher(ctx context.Context, in ProfileInput) (*authentity.User, error) {
	return u.createProfile(ctx, in, authentity.RoleTeacher)
}

// CreateStudent registers a new student profile.
func (u *UsersUsecase) CreateStudent(ctx context.Context, in ProfileInput) (*authentity.User, error) {
	return u.createProfile(ctx, in, authentity.RoleStudent)
}

// EditTeacher updates a teacher profile and reassigns the listed subjects
// to the teacher. It returns ErrTeacherNotFound when no teacher has the ID.
func (u *UsersUsecase) EditTeacher(ctx context.Context, id uint, in ProfileInput) (*authentity.User, error) {
	teacher, err := u.profiles.FindByIDAndRole(ctx, id, authentity.RoleTeacher)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	teacher.Name = in.Name
	teacher.Email = in.Email
	teacher.Password = hashed
	teacher.Address = in.Address
	teacher.Contact = in.Contact
	teacher.CourseID = in.CourseID

	if err := u.profiles.Update(ctx, teacher); err != nil {
		return nil, err
	}

	if len(in.Subjects) > 0 && in.CourseID != nil {
		if err := u.subjects.AssignTeacher(ctx, in.Subjects, teacher.ID, *in.CourseID); err != nil {
			return nil, fmt.Errorf("failed to reassign subjects: %w", err)
		}
	}
	return teacher, nil
}

// EditStudent updates a student profile. It returns ErrStudentNotFound
// when no student has the ID.
func (u *UsersUsecase) EditStudent(ctx context.Context, id uint, in ProfileInput) (*authentity.User, error) {
	student, err := u.profiles.FindByIDAndRole(ctx, id, authentity.RoleStudent)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	student.Name = in.Name
	student.Email = in.Email
	student.Password = hashed
	student.Address = in.Address
	student.Contact = in.Contact
	student.CourseID = in.CourseID
	student.SemesterID = in.SemesterID

	if err := u.profiles.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// deleteProfile removes a user of the given role. Tokens go first, so a
// deleted user's outstanding session dies with the account.
func (u *UsersUsecase) deleteProfile(ctx context.Context, id uint, role authentity.Role, notFound error) error {
	if err := u.tokens.DeleteByUserID(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	deleted, err := u.profiles.DeleteByIDAndRole(ctx, id, role)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound
	}
	return nil
}

// DeleteTeacher removes a teacher and revokes their session.
func (u *UsersUsecase) DeleteTeacher(ctx context.Context, id uint) error {
	return u.deleteProfile(ctx, id, authentity.RoleTeacher, ErrTeacherNotFound)
}

// DeleteStudent removes a student and revokes their session.
func (u *UsersUsecase) DeleteStudent(ctx context.Context, id uint) error {
	return u.deleteProfile(ctx, id, authentity.RoleStudent, ErrStudentNotFound)
}

// GetTeachers returns all teacher profiles.
func (u *UsersUsecase) GetTeachers(ctx context.Context) ([]authentity.User, error) {
	return u.profiles.ListByRole(ctx, authentity.RoleTeacher)
}

// GetStudents returns student profiles. With onlyMine set, the list is
// restricted to students reached by a subject the caller teaches.
func (u *UsersUsecase) GetStudents(ctx context.Context, me *authentity.User, onlyMine bool) ([]authentity.User, error) {
	if onlyMine {
		return u.profiles.ListStudentsOfTeacher(ctx, me.ID)
	}
	return u.profiles.ListByRole(ctx, authentity.RoleStudent)
}

// NotifyInput carries the fields of a notification request.
type NotifyInput struct {
	Title   string
	Message string
	// SentToID is the recipient. A negative value broadcasts to every
	// user holding Role.
	SentToID int
	Role     authentity.Role
}

// Notify delivers a notification from sender. Broadcasts fan out to one
// row per user of the target role; direct sends fail with ErrUserNotFound
// when the recipient does not exist.
func (u *UsersUsecase) Notify(ctx context.Context, sender *authentity.User, in NotifyInput) error {
	if in.SentToID < 0 {
		recipients, err := u.profiles.ListByRole(ctx, in.Role)
		if err != nil {
			return err
		}
		ns := make([]entity.Notification, 0, len(recipients))
		for _, r := range recipients {
			ns = append(ns, entity.Notification{
				Title:    in.Title,
				Message:  in.Message,
				SentToID: r.ID,
				SentByID: sender.ID,
			})
		}
		return u.notifications.CreateBatch(ctx, ns)
	}

	recipient, err := u.profiles.FindByID(ctx, uint(in.SentToID))
	if err != nil {
		return err
	}

	return u.notifications.Create(ctx, &entity.Notification{
		Title:    in.Title,
		Message:  in.Message,
		SentToID: recipient.ID,
		SentByID: sender.ID,
	})
}

// GetNotifications returns the notifications addressed to user.
func (u *UsersUsecase) GetNotifications(ctx context.Context, user *authentity.User) ([]entity.Notification, error) {
	return u.notifications.ListByRecipient(ctx, user.ID)
}
