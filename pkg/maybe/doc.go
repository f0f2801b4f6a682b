// Package maybe provides Result[T, E], a value holding either a success
// payload of type T or a failure payload of type E, never both.
//
// Highlights:
// - Ok/Err/DefaultOk/DefaultErr: construct a Result
// - IsOk/IsErr/Get/OkValue/OkValueOr: inspect and read payloads
// - Map/MapValue/MapErr/MapErrValue/AndThen/IntoErr/MapVoid: compose results
// - Void[E]: the specialization whose success carries no payload
// - Take/Assign/Release/Clone: explicit move, copy and teardown of payloads
// - Equal/EqualFunc: compare two results by state and payload
//
// Reading the payload of the wrong side through OkValue or ErrValue is a
// programming error and panics with *InvalidAccessError. Combinators never
// panic: they branch on the state and forward the other side unchanged.
//
// The zero value of Result is Empty. It is what a moved-from result looks like
// and is never equal to anything.
package maybe
