//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package prefs

type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
