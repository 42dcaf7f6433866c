// Package padnetotp implements a file-backed one-time-pad key store and
// streaming XOR cipher. Two parties who have exchanged identical pad
// material out-of-band can use a padset to encrypt and decrypt byte
// streams with information-theoretic secrecy, while guaranteeing that
// each byte of pad material is consumed at most once on the encrypting
// side.
//
// The core type is PadIndex, a compound [nest, pad, page, line] address
// into a padset directory tree. Padsets are built with padset.Build,
// walked with padset.FindFirstAvailableLine, and consumed or inspected
// through xorstream.WriteContinuous / xorstream.ReadFrom.
package padnetotp
