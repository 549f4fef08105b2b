/*
Package dawg holds a compiled Directed Acyclic Word Graph in memory and
answers the two questions a word search needs: which letters leave a node
(and whether the path to it is a word), and which node a given letter leads
to.

A compiled DAWG is two flat tables. The first has one bitmask per node: bit i
(0..25) is set when the node has an edge labelled with letter 'a'+i, and bit
28 is set when the path from the root spells a complete word. The second has,
for every node, the ids of its children in ascending letter order, one per set
letter bit. Node ids are plain indexes into these tables, and node 0 is the
root.

The root's bitmask is not taken from the table. It is supplied with the
Config used to open the store, because the compiled dictionaries this package
reads keep unrelated bookkeeping in slot 0. NewStore refuses a root mask that
does not agree with the root's child list, so a mask copied over from a
different word list is caught when the store is opened.

Tables are read either from the two-file text form (ReadText, LoadText) or
from the bit-packed binary form (Read, Load). The binary form is as small as
possible: bits are used instead of bytes so that no space is wasted as
padding. A summary of it is at the top of disk.go.

A Store is never modified after it is opened and can be shared by any number
of goroutines.

Small dictionaries can be compiled directly with Compile or a Builder. Words
must be added in strictly increasing alphabetical order and consist only of
the letters a-z.
*/
package dawg
