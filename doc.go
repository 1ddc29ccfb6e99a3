// Package straitjacket turns arbitrary side-effecting operations into
// uniform, validated actions.
//
// An action is a struct whose exported fields are its named inputs. It
// declares construction-time checks with Validate and its effect with
// Invoke, typed by what the effect reports back: a per-variant outcome
// record, or Unit when there is nothing to say.
//
//	type Withdraw struct {
//		Ledger  *bank.Ledger
//		Account string
//		Amount  int64
//	}
//
//	func (a Withdraw) Validate() []string {
//		var c straitjacket.Checklist
//		c.Check(a.Ledger != nil, "ledger is required")
//		c.Check(a.Account != "", "account is required")
//		c.Check(a.Amount > 0, "amount must be positive")
//		return c.Failures()
//	}
//
//	func (a Withdraw) Invoke(ctx context.Context) (Withdrawn, error) {
//		bal, err := a.Ledger.Debit(ctx, a.Account, a.Amount)
//		if err != nil {
//			return Withdrawn{}, err
//		}
//		return Withdrawn{Account: a.Account, Balance: bal}, nil
//	}
//
// Construction and invocation are two separate, uniform steps. Make runs
// the validation pass and refuses to produce an invocable action when any
// check fails, reporting every failure at once:
//
//	a, err := straitjacket.Make(Withdraw{Ledger: l, Account: acct, Amount: 50})
//	if err != nil {
//		return err // *ValidationError: "invalid action: amount must be positive"
//	}
//
// A Unit-producing action is invoked with Call. An outcome-producing action
// is invoked with CallWith, which delivers the outcome to a continuation,
// the only place that outcome is observable:
//
//	err = straitjacket.CallWith(ctx, a, func(out Withdrawn) error {
//		return receipts.Print(out.Account, out.Balance)
//	})
//
// Keeping observation inside the continuation marks the boundary between
// effect-tainted code and the pure code around it.
//
// The calling convention is deliberately thin. It aggregates validation
// failures and routes outcomes, nothing more: errors from Invoke or from a
// continuation propagate unmodified, invocation is synchronous on the
// calling goroutine, and no retry, memoization, logging, or concurrency
// hides underneath. Actions are built per call site and thrown away;
// invoking one twice repeats its effect twice.
package straitjacket
