package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// RecordMovementUseCase agrega transacciones al ledger (IN, OUT, ADJUST).
// Append puro: no lee el saldo disponible, así que una salida puede dejar el
// saldo computado en negativo (decisión de negocio heredada, no un bug).
// Reenviar el mismo request crea otra fila; deduplicar vía ref_no es
// responsabilidad del caller.
type RecordMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	cache         BalanceCache // opcional, puede ser nil
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	cache BalanceCache,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		cache:         cache,
	}
}

// RecordMovementInput entrada para registrar una transacción.
// Lote: BatchID directo; si no, LotNo crea un lote nuevo para el producto;
// si ninguno, la transacción queda sin lote.
type RecordMovementInput struct {
	ProductID   string
	WarehouseID string
	BatchID     string
	LotNo       string
	ExpiryDate  *time.Time
	TxnType     string
	Qty         decimal.Decimal
	UnitCost    *decimal.Decimal
	Direction   string // add | shrink, obligatorio en ADJUST
	Reason      string
	RefNo       string
}

// Record valida la entrada, resuelve el lote y agrega exactamente una fila al
// ledger, todo dentro de una transacción SQL. Devuelve el ID de la fila creada.
// Clasificación de fallos: ErrInvalidInput (entrada mala, sin I/O previa),
// ErrDependency (producto/bodega/lote inexistente o creación de lote fallida),
// o el error de persistencia envuelto.
func (uc *RecordMovementUseCase) Record(ctx context.Context, userID string, in RecordMovementInput) (string, error) {
	// Validación previa a cualquier I/O
	switch in.TxnType {
	case entity.TxnTypeIN, entity.TxnTypeOUT:
	case entity.TxnTypeADJUST:
		if in.Direction != entity.DirectionAdd && in.Direction != entity.DirectionShrink {
			return "", domain.ErrInvalidInput
		}
	default:
		return "", domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return "", domain.ErrInvalidInput
	}
	if !in.Qty.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.LessThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}

	// Las referencias deben existir
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", fmt.Errorf("%w: producto %s", domain.ErrDependency, in.ProductID)
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", fmt.Errorf("%w: bodega %s", domain.ErrDependency, in.WarehouseID)
	}

	now := time.Now()
	txnID := uuid.New().String()

	// Lote + movimiento en una sola transacción: si el insert del movimiento
	// falla, el lote recién creado se revierte con el Rollback.
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.TransactionRepository,
		batchRepo repository.BatchRepository,
	) error {
		batchID := in.BatchID
		switch {
		case batchID != "":
			batch, err := batchRepo.GetByID(batchID)
			if err != nil {
				return err
			}
			if batch == nil {
				return fmt.Errorf("%w: lote %s", domain.ErrDependency, batchID)
			}
		case in.LotNo != "":
			batch := &entity.Batch{
				ID:         uuid.New().String(),
				ProductID:  in.ProductID,
				LotNo:      in.LotNo,
				ExpiryDate: in.ExpiryDate,
				CreatedAt:  now,
			}
			if err := batchRepo.Create(batch); err != nil {
				return fmt.Errorf("%w: crear lote %s: %v", domain.ErrDependency, in.LotNo, err)
			}
			batchID = batch.ID
		}

		direction := ""
		if in.TxnType == entity.TxnTypeADJUST {
			direction = in.Direction
		}
		txn := &entity.InventoryTransaction{
			ID:          txnID,
			CreatedAt:   now,
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			BatchID:     batchID,
			TxnType:     in.TxnType,
			Qty:         in.Qty,
			UnitCost:    in.UnitCost,
			Direction:   direction,
			Reason:      in.Reason,
			RefNo:       in.RefNo,
			CreatedBy:   userID,
		}
		return txnRepo.Create(txn)
	})
	if err != nil {
		return "", err
	}

	// El saldo cacheado del producto afectado quedó obsoleto
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	return txnID, nil
}
