package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/holiman/uint256"

	runtimeerrors "minichain/core/errors"
	"minichain/core/events"
	"minichain/core/types"
	"minichain/native/bank"
	"minichain/native/poe"
	"minichain/native/system"
	"minichain/observability"
)

// StateProcessor is the runtime: it owns one instance of each pallet's
// state for the process lifetime and mediates every cross-pallet
// concern. Pallets never reference each other or the processor.
type StateProcessor struct {
	System *system.Pallet
	Bank   *bank.Pallet
	PoE    *poe.Pallet

	emitter events.Emitter
	logger  *slog.Logger
	metrics *observability.RuntimeMetrics
}

func NewStateProcessor() *StateProcessor {
	return &StateProcessor{
		System:  system.NewPallet(),
		Bank:    bank.NewPallet(),
		PoE:     poe.NewPallet(),
		emitter: events.NoopEmitter{},
		logger:  slog.Default(),
		metrics: observability.Runtime(),
	}
}

// SetEmitter wires a subscriber for state-change events.
func (sp *StateProcessor) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	sp.emitter = emitter
}

// SetLogger replaces the processor's logger.
func (sp *StateProcessor) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	sp.logger = logger
}

// ExecuteBlock runs every extrinsic of the block in order against the
// pallets and returns one receipt per processed extrinsic.
//
// The chain clock advances exactly once per block, before any extrinsic
// runs, so an empty block still moves the block number. Each extrinsic
// consumes a nonce for its caller before its call is routed, whether or
// not the call succeeds. Call failures are recorded in the receipt and
// never abort the block; the returned error is reserved for structural
// problems (nil block, a header that does not continue the chain, an
// unknown call type).
func (sp *StateProcessor) ExecuteBlock(block *types.Block) ([]types.Receipt, error) {
	if block == nil || block.Header == nil {
		return nil, runtimeerrors.ErrNilBlock
	}
	height := sp.System.BlockNumber() + 1
	if block.Header.Height != height {
		return nil, fmt.Errorf("%w: header %d, expected %d",
			runtimeerrors.ErrHeightMismatch, block.Header.Height, height)
	}
	sp.System.IncrementBlockNumber()

	receipts := make([]types.Receipt, 0, len(block.Extrinsics))
	for i, ext := range block.Extrinsics {
		// Nonce is consumed on intake, before routing, so a failed or
		// unroutable call still counts against the caller.
		sp.System.IncrementNonce(ext.Caller)

		err := sp.applyExtrinsic(ext)
		if errors.Is(err, runtimeerrors.ErrUnknownCall) {
			// Malformed block: stop the walk. Effects of earlier
			// extrinsics stand; there is no rollback.
			return receipts, fmt.Errorf("extrinsic %d: %w", i, err)
		}
		sp.metrics.ObserveExtrinsic(ext.Call.Type.String(), err)
		if err != nil {
			sp.logger.Warn("extrinsic failed",
				slog.Uint64("height", height),
				slog.Int("index", i),
				slog.String("caller", string(ext.Caller)),
				slog.String("call", ext.Call.Type.String()),
				slog.Any("error", err))
		}
		receipts = append(receipts, types.Receipt{
			Index:  i,
			Caller: ext.Caller,
			Call:   ext.Call.Type,
			Err:    err,
		})
	}

	sp.metrics.ObserveBlock(height)
	sp.logger.Info("block executed",
		slog.Uint64("height", height),
		slog.Int("extrinsics", len(receipts)))
	return receipts, nil
}

// applyExtrinsic routes the call to its pallet. The call union is
// closed: every type constant has an arm here.
func (sp *StateProcessor) applyExtrinsic(ext types.Extrinsic) error {
	call := ext.Call
	switch call.Type {
	case types.CallTypeTransfer:
		if err := sp.Bank.Transfer(ext.Caller, call.To, call.Amount); err != nil {
			return err
		}
		sp.emitter.Emit(events.Transfer{From: ext.Caller, To: call.To, Amount: call.Amount})
		return nil
	case types.CallTypeCreateClaim:
		if err := sp.PoE.CreateClaim(ext.Caller, call.Content); err != nil {
			return err
		}
		sp.emitter.Emit(events.ClaimCreated{Owner: ext.Caller, Content: call.Content})
		return nil
	case types.CallTypeRevokeClaim:
		if err := sp.PoE.RevokeClaim(ext.Caller, call.Content); err != nil {
			return err
		}
		sp.emitter.Emit(events.ClaimRevoked{Owner: ext.Caller, Content: call.Content})
		return nil
	}
	return fmt.Errorf("%w: 0x%02x", runtimeerrors.ErrUnknownCall, byte(call.Type))
}

// BalanceOf returns the ledger balance for the account.
func (sp *StateProcessor) BalanceOf(who types.AccountID) *uint256.Int {
	return sp.Bank.BalanceOf(who)
}

// ClaimOwner returns the owner of a claim, if one exists.
func (sp *StateProcessor) ClaimOwner(content string) (types.AccountID, bool) {
	return sp.PoE.Owner(content)
}

// BlockNumber returns the chain clock's current block number.
func (sp *StateProcessor) BlockNumber() uint64 {
	return sp.System.BlockNumber()
}

// NonceOf returns the number of extrinsics the account has submitted.
func (sp *StateProcessor) NonceOf(who types.AccountID) uint64 {
	return sp.System.Nonce(who)
}
