package pricing

// User-facing messages, in the storefront language.
const (
	MsgCouponEmptyCode = "Por favor, insira um código de cupom."
	MsgCouponNotFound  = "Cupom inválido ou não encontrado."
	MsgCouponInactive  = "Este cupom não está ativo no momento."
	MsgCouponExpired   = "Este cupom expirou."
	MsgCouponMinOrder  = "Este cupom requer um pedido mínimo de %s."
	MsgCouponApplied   = "Cupom \"%s\" aplicado com sucesso!"
	MsgCouponRemoved   = "Cupom removido."

	MsgOrderEmptyCart     = "Seu carrinho está vazio. Adicione itens antes de enviar."
	MsgOrderMissingName   = "Por favor, informe seu nome."
	MsgOrderMissingAddr   = "Por favor, informe o endereço de entrega."
	MsgOrderMissingMethod = "Por favor, selecione uma forma de pagamento."
)
