// Package memstore хранилище в памяти процесса с теми же контрактами и ошибками,
// что и PostgreSQL-репозитории. Используется при database.driver = "memory" и в тестах.
//
// TxManager сериализует все транзакции одним мьютексом, поэтому проверка и запись
// внутри DoSerializable атомарны так же, как в PostgreSQL.
package memstore
