package ebpf

// Decode decodes a slice of raw instructions into interpreted instructions. The returned slice always has the same
// length as the input, so jump offsets can be resolved against it directly. The second half of a LoadConstant64bit
// is represented by a Nop. Raw instructions which don't match any known encoding are returned as an *Invalid so the
// decision of what to do with them is left to the consumer.
func Decode(rawIns []RawInstruction) []Instruction {
	instructions := make([]Instruction, 0, len(rawIns))
	for i := 0; i < len(rawIns); i++ {
		raw := rawIns[i]
		op := raw.Op
		imm := raw.Imm
		dst := raw.GetDestReg()
		src := raw.GetSourceReg()
		off := raw.Off

		var inst Instruction

		switch op {
		case BPF_LD | uint8(BPF_DW) | BPF_IMM:
			if i+1 >= len(rawIns) {
				// The second half of the instruction is missing
				break
			}

			instructions = append(instructions, &LoadConstant64bit{
				Dest: dst,
				Src:  src,
				Val1: imm,
				Val2: rawIns[i+1].Imm,
			})

			inst = &Nop{}

			i++

		case BPF_LD | BPF_ABS | uint8(BPF_W),
			BPF_LD | BPF_ABS | uint8(BPF_H),
			BPF_LD | BPF_ABS | uint8(BPF_B),
			BPF_LD | BPF_ABS | uint8(BPF_DW):
			inst = &LoadSocketBufConstant{
				Value: imm,
				Size:  Size(op ^ (BPF_LD | BPF_ABS)),
			}

		case BPF_LD | BPF_IND | uint8(BPF_W),
			BPF_LD | BPF_IND | uint8(BPF_H),
			BPF_LD | BPF_IND | uint8(BPF_B),
			BPF_LD | BPF_IND | uint8(BPF_DW):
			inst = &LoadSocketBuf{
				Src:    src,
				Offset: imm,
				Size:   Size(op ^ (BPF_LD | BPF_IND)),
			}

		case BPF_LDX | BPF_MEM | uint8(BPF_W),
			BPF_LDX | BPF_MEM | uint8(BPF_H),
			BPF_LDX | BPF_MEM | uint8(BPF_B),
			BPF_LDX | BPF_MEM | uint8(BPF_DW):
			inst = &LoadMemory{
				Src:    src,
				Dest:   dst,
				Offset: off,
				Size:   Size(op ^ (BPF_LDX | BPF_MEM)),
			}

		case BPF_ST | BPF_MEM | uint8(BPF_W),
			BPF_ST | BPF_MEM | uint8(BPF_H),
			BPF_ST | BPF_MEM | uint8(BPF_B),
			BPF_ST | BPF_MEM | uint8(BPF_DW):
			inst = &StoreMemoryConstant{
				Dest:   dst,
				Offset: off,
				Size:   Size(op ^ (BPF_ST | BPF_MEM)),
				Value:  imm,
			}

		case BPF_STX | BPF_MEM | uint8(BPF_W),
			BPF_STX | BPF_MEM | uint8(BPF_H),
			BPF_STX | BPF_MEM | uint8(BPF_B),
			BPF_STX | BPF_MEM | uint8(BPF_DW):
			inst = &StoreMemoryRegister{
				Dest:   dst,
				Src:    src,
				Offset: off,
				Size:   Size(op ^ (BPF_STX | BPF_MEM)),
			}

		case BPF_ALU64 | BPF_K | BPF_ADD:
			inst = &Add64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_ADD:
			inst = &Add64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_SUB:
			inst = &Sub64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_SUB:
			inst = &Sub64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_MUL:
			inst = &Mul64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_MUL:
			inst = &Mul64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_DIV:
			inst = &Div64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_DIV:
			inst = &Div64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_OR:
			inst = &Or64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_OR:
			inst = &Or64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_AND:
			inst = &And64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_AND:
			inst = &And64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_LSH:
			inst = &Lsh64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_LSH:
			inst = &Lsh64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_RSH:
			inst = &Rsh64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_RSH:
			inst = &Rsh64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_NEG:
			inst = &Neg64{Dest: dst}

		case BPF_ALU64 | BPF_K | BPF_MOD:
			inst = &Mod64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_MOD:
			inst = &Mod64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_XOR:
			inst = &Xor64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_XOR:
			inst = &Xor64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_MOV:
			inst = &Mov64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_MOV:
			inst = &Mov64Register{Dest: dst, Src: src}

		case BPF_ALU64 | BPF_K | BPF_ARSH:
			inst = &ARSH64{Dest: dst, Value: imm}
		case BPF_ALU64 | BPF_X | BPF_ARSH:
			inst = &ARSH64Register{Dest: dst, Src: src}

		// The opcode of the byteswap instructions is the same for all widths, the width is stored in the imm.
		case BPF_ALU | BPF_END | BPF_TO_LE:
			if ValidEndWidth(imm) {
				inst = &EndToLE{Dest: dst, Width: uint8(imm)}
			}
		case BPF_ALU | BPF_END | BPF_TO_BE:
			if ValidEndWidth(imm) {
				inst = &EndToBE{Dest: dst, Width: uint8(imm)}
			}

		case BPF_JMP | BPF_JA:
			inst = &Jump{Offset: off}

		case BPF_JMP | BPF_K | BPF_JEQ:
			inst = &JumpEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JEQ:
			inst = &JumpEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JGT:
			inst = &JumpGreaterThan{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JGT:
			inst = &JumpGreaterThanRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JGE:
			inst = &JumpGreaterThanEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JGE:
			inst = &JumpGreaterThanEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JSET:
			inst = &JumpIfAnd{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JSET:
			inst = &JumpIfAndRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JNE:
			inst = &JumpNotEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JNE:
			inst = &JumpNotEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JSGT:
			inst = &JumpSignedGreaterThan{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JSGT:
			inst = &JumpSignedGreaterThanRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JSGE:
			inst = &JumpSignedGreaterThanOrEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JSGE:
			inst = &JumpSignedGreaterThanOrEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JLT:
			inst = &JumpSmallerThan{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JLT:
			inst = &JumpSmallerThanRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JLE:
			inst = &JumpSmallerThanEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JLE:
			inst = &JumpSmallerThanEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JSLT:
			inst = &JumpSignedSmallerThan{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JSLT:
			inst = &JumpSignedSmallerThanRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_K | BPF_JSLE:
			inst = &JumpSignedSmallerThanOrEqual{Dest: dst, Offset: off, Value: imm}
		case BPF_JMP | BPF_X | BPF_JSLE:
			inst = &JumpSignedSmallerThanOrEqualRegister{Dest: dst, Src: src, Offset: off}

		case BPF_JMP | BPF_CALL:
			inst = &CallHelper{Function: imm}

		case BPF_JMP | BPF_EXIT:
			inst = &Exit{}
		}

		if inst == nil {
			inst = &Invalid{RawInstruction: raw}
		}

		instructions = append(instructions, inst)
	}

	return instructions
}
