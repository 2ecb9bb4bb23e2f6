// Package merkle implements the sorted-pair keccak256 accumulator used to
// commit to claim-entitlement sets in proof-gated deployments. The engine
// only verifies inclusion; the Tree builder exists for resolvers and tests
// that produce commitments over (participant, amount) snapshots.
package merkle

import (
	"bytes"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/sha3"
)

// HashSize is the byte length of every node, leaf, and root
const HashSize = 32

var (
	// ErrNoLeaves is returned when building a tree over an empty set
	ErrNoLeaves = errors.New("merkle: no leaves")
	// ErrLeafNotFound is returned when proving a leaf outside the tree
	ErrLeafNotFound = errors.New("merkle: leaf not found")
)

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Leaf computes the commitment leaf for one (participant, amount)
// entitlement: keccak256(participantID || amount as 8-byte big-endian).
func Leaf(participantID string, amount int64) []byte {
	var amt [8]byte
	binary.BigEndian.PutUint64(amt[:], uint64(amount))
	return keccak256([]byte(participantID), amt[:])
}

// hashPair hashes two nodes with the pair sorted bytewise first, so proofs
// carry no left/right orientation bits.
func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return keccak256(a, b)
}

// Verify checks a sorted-pair inclusion proof for leaf against root.
func Verify(root, leaf []byte, proof [][]byte) bool {
	if len(root) != HashSize || len(leaf) != HashSize {
		return false
	}
	computed := leaf
	for _, sibling := range proof {
		if len(sibling) != HashSize {
			return false
		}
		computed = hashPair(computed, sibling)
	}
	return bytes.Equal(computed, root)
}

// Tree is a sorted-pair merkle tree over a fixed leaf set. An unpaired node
// at the end of a level is carried up unchanged.
type Tree struct {
	levels [][][]byte // levels[0] is the leaf level
}

// New builds a tree over the given leaves, preserving their order.
func New(leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	for _, l := range leaves {
		if len(l) != HashSize {
			return nil, errors.New("merkle: leaf must be 32 bytes")
		}
	}

	level := make([][]byte, len(leaves))
	copy(level, leaves)
	levels := [][][]byte{level}

	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the tree's commitment root.
func (t *Tree) Root() []byte {
	top := t.levels[len(t.levels)-1]
	root := make([]byte, HashSize)
	copy(root, top[0])
	return root
}

// Proof returns the inclusion proof for the first occurrence of leaf.
func (t *Tree) Proof(leaf []byte) ([][]byte, error) {
	idx := -1
	for i, l := range t.levels[0] {
		if bytes.Equal(l, leaf) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrLeafNotFound
	}

	var proof [][]byte
	for _, level := range t.levels[:len(t.levels)-1] {
		var sibling int
		if idx%2 == 0 {
			sibling = idx + 1
		} else {
			sibling = idx - 1
		}
		if sibling < len(level) {
			s := make([]byte, HashSize)
			copy(s, level[sibling])
			proof = append(proof, s)
		}
		idx /= 2
	}
	return proof, nil
}
