package anchoring

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"unicode/utf16"
)

// ExpenditureRecord is an off-chain expenditure whose content hash is anchored on the ledger.
type ExpenditureRecord struct {
	InvoiceNumber string   `json:"invoice_number" yaml:"invoice_number"`
	Amount        float64  `json:"amount" yaml:"amount"`
	SupplierName  string   `json:"supplier_name" yaml:"supplier_name"`
	DonorIDs      []string `json:"donor_ids" yaml:"donor_ids"`
}

// Hash returns the record's expenditure hash.
func (r ExpenditureRecord) Hash() string {
	return GenerateExpenditureHash(r.InvoiceNumber, r.Amount, r.SupplierName, r.DonorIDs)
}

// Digest returns the raw 32 byte expenditure digest, the value carried in an anchor memo.
func (r ExpenditureRecord) Digest() [32]byte {
	return sha256.Sum256([]byte(canonical(r.InvoiceNumber, r.Amount, r.SupplierName, r.DonorIDs)))
}

// GenerateExpenditureHash returns the lowercase hex SHA-256 digest of
//
//	invoiceNumber|amount|supplierName|donor1,donor2,...
//
// with the donor IDs sorted. The result does not depend on the order of donorIDs, and donorIDs
// is not modified.
func GenerateExpenditureHash(invoiceNumber string, amount float64, supplierName string, donorIDs []string) string {
	sum := sha256.Sum256([]byte(canonical(invoiceNumber, amount, supplierName, donorIDs)))

	return hex.EncodeToString(sum[:])
}

// Verify reports whether memo, the 32 bytes attached to an anchoring transaction, is the digest
// of record.
func Verify(record ExpenditureRecord, memo []byte) bool {
	digest := record.Digest()

	return bytes.Equal(digest[:], memo)
}

func canonical(invoiceNumber string, amount float64, supplierName string, donorIDs []string) string {
	sorted := slices.Clone(donorIDs)
	slices.SortFunc(sorted, compareUTF16)

	return strings.Join([]string{
		invoiceNumber,
		formatAmount(amount),
		supplierName,
		strings.Join(sorted, ","),
	}, "|")
}

// compareUTF16 orders strings by UTF-16 code units. It differs from byte order only for
// characters outside the Basic Multilingual Plane.
func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
