/*

Process of assembly

Source Text ->
	parse ->
Instruction List (parse) ->
	encode ->
IR Records (ir) ->
	pack ->
Binary Module

Only the first two arrows exist at this stage; pack is a textual
listing placeholder until the container format is settled.

*/
package asm
