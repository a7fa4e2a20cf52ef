package main

import (
	"context"
	"fmt"

	"mangopay-sync/internal/app"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type idFunc func(ctx context.Context, a *app.App, id uuid.UUID) (any, error)

// byID adapts a lifecycle call keyed by a single record id.
func byID(call idFunc) appFunc {
	return func(ctx context.Context, a *app.App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return call(ctx, a, id)
	}
}

func idCmd(use, short string, run appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(run),
	}
}

func group(use, short string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(children...)
	return cmd
}

func userCmd() *cobra.Command {
	return group("user", "Processor user lifecycle",
		idCmd("create", "Create a registered user on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Users.Create(ctx, id)
			})),
		idCmd("update", "Push local user changes to the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				if err := a.Users.Update(ctx, id); err != nil {
					return nil, err
				}
				return map[string]any{"id": id, "updated": true}, nil
			})),
		idCmd("auth", "Report a user's KYC authentication level",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Users.Authentication(ctx, id)
			})),
	)
}

func documentCmd() *cobra.Command {
	upload := &cobra.Command{
		Use:   "upload-page [document-id] [file-url]",
		Short: "Fetch a page and upload it to a created document",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return a.Documents.UploadPage(ctx, id, args[1])
		}),
	}

	return group("document", "KYC document lifecycle",
		idCmd("create", "Create a registered document on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Documents.Create(ctx, id)
			})),
		idCmd("get", "Refresh a document's status from the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Documents.Get(ctx, id)
			})),
		idCmd("pages", "List the pages uploaded to a document",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Documents.Pages(ctx, id)
			})),
		idCmd("ask-validation", "Submit a document for validation",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Documents.AskForValidation(ctx, id)
			})),
		upload,
	)
}

func bankAccountCmd() *cobra.Command {
	return group("bank-account", "Bank account lifecycle",
		idCmd("create", "Create a registered bank account on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.BankAccounts.Create(ctx, id)
			})),
	)
}

func walletCmd() *cobra.Command {
	return group("wallet", "Wallet lifecycle",
		idCmd("create", "Create a registered wallet on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Wallets.Create(ctx, id)
			})),
		idCmd("balance", "Fetch a wallet's live balance",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				balance, err := a.Wallets.Balance(ctx, id)
				if err != nil {
					return nil, err
				}
				out := map[string]any{"wallet_id": id, "balance": nil}
				if balance != nil {
					out["balance"] = balance.Value.StringFixed(2)
					out["currency"] = balance.Currency
				}
				return out, nil
			})),
	)
}

func payInCmd() *cobra.Command {
	return group("payin", "Pay-in lifecycle",
		idCmd("create", "Create a registered pay-in on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.PayIns.Create(ctx, id)
			})),
		idCmd("get", "Refresh a pay-in's status from the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.PayIns.Get(ctx, id)
			})),
	)
}

func payOutCmd() *cobra.Command {
	return group("payout", "Pay-out lifecycle",
		idCmd("create", "Create a registered pay-out on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.PayOuts.Create(ctx, id)
			})),
	)
}

func transferCmd() *cobra.Command {
	return group("transfer", "Wallet-to-wallet transfer lifecycle",
		idCmd("create", "Create a registered transfer on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Transfers.Create(ctx, id)
			})),
	)
}

func refundCmd() *cobra.Command {
	return group("refund", "Pay-in refund lifecycle",
		idCmd("create", "Create a registered refund on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Refunds.Create(ctx, id)
			})),
	)
}

func cardRegistrationCmd() *cobra.Command {
	saveCard := &cobra.Command{
		Use:   "save-card [registration-id] [card-id]",
		Short: "Attach the tokenized card id returned by the processor",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			if args[1] == "" {
				return nil, fmt.Errorf("card id must not be empty")
			}
			return a.Cards.SaveCardID(ctx, id, args[1])
		}),
	}

	return group("card-registration", "Card registration lifecycle",
		idCmd("create", "Create a saved card registration on the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Cards.CreateRegistration(ctx, id)
			})),
		idCmd("preregistration", "Print the data a client needs to tokenize a card",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Cards.PreregistrationData(ctx, id)
			})),
		saveCard,
	)
}

func cardCmd() *cobra.Command {
	return group("card", "Card state",
		idCmd("refresh", "Refresh a card from the processor",
			byID(func(ctx context.Context, a *app.App, id uuid.UUID) (any, error) {
				return a.Cards.RefreshCard(ctx, id)
			})),
	)
}
