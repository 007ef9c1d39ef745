package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcdir/internal/directory/models"
	"pcdir/internal/directory/store"
	person "pcdir/internal/person/models"
	"pcdir/internal/sentinel"
	dErrors "pcdir/pkg/domain-errors"
)

func newService() *DirectoryService {
	return NewDirectoryService(store.NewInMemory())
}

func owner(t *testing.T, first, last, email string) *person.Person {
	t.Helper()
	p, err := person.NewPersonBuilder().
		WithFirstName(first).
		WithLastName(last).
		WithEmailAddress(email).
		WithAffiliation(person.InternAffiliation()).
		Build()
	require.NoError(t, err)
	return p
}

func johnsPC(t *testing.T) models.PCBuilder {
	return *models.NewPCBuilder().
		WithOwner(owner(t, "John", "Doe", "john@doe.com")).
		WithOS(models.Windows(models.OSWindows7))
}

func TestAddPC_Succeeds(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	pcs := svc.ListPCs(ctx)
	require.Len(t, pcs, 1)
	assert.Equal(t, 0, pcs[0].ID())
	assert.Equal(t, models.Windows(models.OSWindows7), pcs[0].OS())
	// Hardware was default-filled.
	assert.Equal(t, models.BeefyWorkstation(), pcs[0].Hardware())
}

func TestAddPC_SameEmailDifferentFirstNameFails(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	john2 := *models.NewPCBuilder().
		WithOwner(owner(t, "John2", "Doe", "john@doe.com")).
		WithOS(models.Windows(models.OSWindows7))
	err := svc.AddPC(ctx, john2)
	require.Error(t, err)

	var dup *models.DuplicateEmailError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, person.EmailAddress("john@doe.com"), dup.Email)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	// The rejected add left the directory unchanged.
	assert.Len(t, svc.ListPCs(ctx), 1)
}

func TestAddPC_IdenticalOwnerShared(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))
	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	pcs := svc.ListPCs(ctx)
	require.Len(t, pcs, 2)
	assert.Same(t, pcs[0].Owner(), pcs[1].Owner())
}

func TestAddPC_WithoutOwner(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, *models.NewPCBuilder()))

	pcs := svc.ListPCs(ctx)
	require.Len(t, pcs, 1)
	assert.Nil(t, pcs[0].Owner())
	assert.Equal(t, models.DefaultOS(), pcs[0].OS())
}

func TestSendEmail_DeliversToFirstOnPC(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))
	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	pcs := svc.ListPCs(ctx)
	handle, err := pcs[0].AcquireMaintenanceLock("dusting")
	require.NoError(t, err)

	// First entry is in maintenance, so the second one receives the mail.
	require.NoError(t, svc.SendEmail(ctx, "john@doe.com", "hello"))
	assert.Equal(t, 0, pcs[0].MailboxLen())
	require.Equal(t, 1, pcs[1].MailboxLen())
	assert.Equal(t, "hello", pcs[1].Mailbox()[0].Body)

	handle.Release()

	// Both are On again; insertion order breaks the tie.
	require.NoError(t, svc.SendEmail(ctx, "john@doe.com", "again"))
	assert.Equal(t, 1, pcs[0].MailboxLen())
	assert.Equal(t, 1, pcs[1].MailboxLen())
}

func TestSendEmail_AllPCsBusyFails(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))
	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	pcs := svc.ListPCs(ctx)
	h0, err := pcs[0].AcquireMaintenanceLock("window 0")
	require.NoError(t, err)
	defer h0.Release()
	require.NoError(t, pcs[1].PowerOff())

	err = svc.SendEmail(ctx, "john@doe.com", "no luck")
	require.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))

	// No partial delivery.
	assert.Equal(t, 0, pcs[0].MailboxLen())
	assert.Equal(t, 0, pcs[1].MailboxLen())

	// Release the lock; the first machine becomes eligible again.
	h0.Release()
	require.NoError(t, svc.SendEmail(ctx, "john@doe.com", "delivered after release"))
	assert.Equal(t, 1, pcs[0].MailboxLen())
}

func TestSendEmail_UnknownRecipient(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	err := svc.SendEmail(ctx, "dings@bla.com", "anyone home?")
	require.Error(t, err)

	var notFound *models.EmailNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, person.EmailAddress("dings@bla.com"), notFound.Email)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestSendEmail_InvalidAddress(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	err := svc.SendEmail(ctx, "not an email", "oops")
	require.ErrorIs(t, err, sentinel.ErrInvalidEmailAddress)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestSendEmailTo_ValidatedAddress(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	to, err := person.ParseEmailAddress("john@doe.com")
	require.NoError(t, err)
	require.NoError(t, svc.SendEmailTo(ctx, to, "typed path"))
	assert.Equal(t, 1, svc.ListPCs(ctx)[0].MailboxLen())
}

func TestSearchByOwnerName(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))
	maria := *models.NewPCBuilder().
		WithOwner(owner(t, "Maria", "Dingdong", "maria@dingdong.com"))
	require.NoError(t, svc.AddPC(ctx, maria))
	require.NoError(t, svc.AddPC(ctx, *models.NewPCBuilder()))

	byBoth := svc.SearchByOwnerName(ctx, "john", "doe")
	require.Len(t, byBoth, 1)
	assert.Equal(t, 0, byBoth[0].ID())

	byLast := svc.SearchByOwnerName(ctx, "", "DINGDONG")
	require.Len(t, byLast, 1)
	assert.Equal(t, "Maria", byLast[0].Owner().First)

	assert.Empty(t, svc.SearchByOwnerName(ctx, "John", "Dingdong"))

	// Empty parts match every owned entry; the unowned one never matches.
	assert.Len(t, svc.SearchByOwnerName(ctx, "", ""), 2)
}

func TestAddPC_ErrorChainExposesSentinels(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.AddPC(ctx, johnsPC(t)))

	john2 := *models.NewPCBuilder().
		WithOwner(owner(t, "John2", "Doe", "john@doe.com"))
	err := svc.AddPC(ctx, john2)

	var domainErr *dErrors.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, dErrors.CodeConflict, domainErr.Code)
}
