// Package repository holds the typed GORM query wrappers for the five board
// entities. Each repository owns a *gorm.DB and translates between the JSON
// projection in package models and relational rows.
//
// Repositories never open transactions themselves; callers that need one
// obtain a transaction-bound copy with WithTx.
package repository
