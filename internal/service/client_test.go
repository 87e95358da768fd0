package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st, Signer: newTestSigner(t)}
	clients := &ClientService{Store: st}

	owner := newTestAgency(t, auth, "CRUD Agency", "owner@crud.example")
	other := newTestAgency(t, auth, "Rival Agency", "owner@rival.example")

	client, err := clients.CreateClient(ctx, owner.Agency.ID, "Acme Corp", "Acme Holdings", "Contact@Acme.example", " 555-0100 ")
	require.NoError(t, err)
	require.Equal(t, "contact@acme.example", client.ContactEmail)
	require.Equal(t, "555-0100", client.ContactPhone)

	t.Run("get is agency scoped", func(t *testing.T) {
		got, err := clients.GetClient(ctx, client.ID, owner.Agency.ID)
		require.NoError(t, err)
		require.Equal(t, "Acme Corp", got.Name)

		_, err = clients.GetClient(ctx, client.ID, other.Agency.ID)
		require.ErrorIs(t, err, ErrClientNotFound, "cross-tenant read should look like a missing row")
	})

	t.Run("list only shows own clients", func(t *testing.T) {
		own, err := clients.ListClients(ctx, owner.Agency.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)

		rival, err := clients.ListClients(ctx, other.Agency.ID)
		require.NoError(t, err)
		require.Empty(t, rival)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := clients.UpdateClient(ctx, client.ID, owner.Agency.ID, ClientUpdate{
			Company: str("Acme Group"),
		})
		require.NoError(t, err)
		require.Equal(t, "Acme Group", updated.Company)
		require.Equal(t, "Acme Corp", updated.Name, "unset fields keep their values")

		_, err = clients.UpdateClient(ctx, client.ID, owner.Agency.ID, ClientUpdate{Name: str("  ")})
		require.ErrorIs(t, err, ErrInvalidClient)
	})

	t.Run("blank create fields rejected", func(t *testing.T) {
		_, err := clients.CreateClient(ctx, owner.Agency.ID, "", "", "x@y.example", "")
		require.ErrorIs(t, err, ErrInvalidClient)
	})
}

func TestDeleteClientGuardsProjects(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st, Signer: newTestSigner(t)}
	clients := &ClientService{Store: st}
	projects := &ProjectService{Store: st}

	owner := newTestAgency(t, auth, "Guard Agency", "owner@guard.example")
	client := newTestClient(t, clients, owner.Agency.ID, "Acme")
	project := newTestProject(t, projects, owner.Agency.ID, client.ID, "SEO Push")

	err := clients.DeleteClient(ctx, client.ID, owner.Agency.ID)
	require.ErrorIs(t, err, ErrClientHasProjects)

	require.NoError(t, projects.DeleteProject(ctx, project.ID, owner.Agency.ID))
	require.NoError(t, clients.DeleteClient(ctx, client.ID, owner.Agency.ID))

	_, err = clients.GetClient(ctx, client.ID, owner.Agency.ID)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestResetClientPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signer := newTestSigner(t)
	auth := &AuthService{Store: st, Signer: signer}
	clients := &ClientService{Store: st}
	invites := &InviteService{Store: st, Signer: signer, FrontendURL: "https://app.example"}

	owner := newTestAgency(t, auth, "Reset Agency", "owner@reset.example")
	client := newTestClient(t, clients, owner.Agency.ID, "Acme")

	t.Run("no portal user yet", func(t *testing.T) {
		_, err := clients.ResetClientPassword(ctx, client.ID, owner.Agency.ID)
		require.ErrorIs(t, err, ErrNoPortalUser)
	})

	minted, err := invites.CreateInvite(ctx, client.ID, owner.Agency.ID, owner.User.ID, "portal@acme.example", 7)
	require.NoError(t, err)
	_, err = invites.AcceptInvite(ctx, minted.Token, "oldpassword", "Pat")
	require.NoError(t, err)

	t.Run("issues a fresh working password", func(t *testing.T) {
		password, err := clients.ResetClientPassword(ctx, client.ID, owner.Agency.ID)
		require.NoError(t, err)
		require.NotEmpty(t, password)

		_, err = auth.Login(ctx, "portal@acme.example", "oldpassword")
		require.ErrorIs(t, err, ErrInvalidCredentials, "old password must stop working")

		sess, err := auth.Login(ctx, "portal@acme.example", password)
		require.NoError(t, err)
		require.Equal(t, client.ID, sess.User.ClientID)
	})

	t.Run("scoped to the owning agency", func(t *testing.T) {
		other := newTestAgency(t, auth, "Rival", "owner@rival2.example")
		_, err := clients.ResetClientPassword(ctx, client.ID, other.Agency.ID)
		require.ErrorIs(t, err, ErrClientNotFound)
	})
}
