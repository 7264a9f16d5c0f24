package scoring

import (
	"fmt"
	"strings"

	"github.com/ventapel/prospect-cli/internal/model"
)

// buildPrompt assembles the PPVVC analysis brief for the model: solution
// context, prospect facts, market intelligence, the scoring rubric, and the
// required JSON shape.
func buildPrompt(company model.Company, contact model.Contact, intel *model.SignalBundle) string {
	var b strings.Builder

	b.WriteString(`Você é um especialista em vendas B2B para PEQUENAS EMPRESAS com foco em Santa Catarina. Analise este prospecto PME com profundidade.

CONTEXTO VENTAPEL:
- Solução: Sistema BP555/BP755 + Cinta VENOM para fechamento inviolável
- Investimento PME: R$50k-150k (versão mais acessível para pequenas empresas)
- ROI típico PME: 8-15 meses
- Casos de sucesso PME: Redução 60% custos embalagem, 85% menos violações
- Vantagem PME: Implementação rápida (1-2 semanas vs 3-6 meses em grandes)

DADOS DO PROSPECTO:
`)

	fmt.Fprintf(&b, "Empresa: %s\n", orDefault(company.Name, "Não identificada"))
	fmt.Fprintf(&b, "- Cidade: %s\n", orDefault(company.City, "SC"))
	fmt.Fprintf(&b, "- Indústria: %s\n", orDefault(company.Industry, "Não especificada"))
	if company.EmployeeCount > 0 {
		fmt.Fprintf(&b, "- Funcionários: %d\n", company.EmployeeCount)
	} else {
		b.WriteString("- Funcionários: Desconhecido\n")
	}
	if company.AnnualRevenue > 0 {
		fmt.Fprintf(&b, "- Receita estimada: R$ %.1fM\n", company.AnnualRevenue/1e6)
	} else {
		b.WriteString("- Receita estimada: Pequeno porte\n")
	}

	fmt.Fprintf(&b, "\nContato: %s\n", orDefault(contact.DisplayName(), "Não identificado"))
	fmt.Fprintf(&b, "- Cargo: %s\n", orDefault(contact.Title, "Não especificado"))
	fmt.Fprintf(&b, "- Senioridade: %s\n", orDefault(contact.Seniority, "Não identificada"))
	fmt.Fprintf(&b, "- Email: %s\n", available(contact.PrimaryEmail() != ""))
	fmt.Fprintf(&b, "- Telefone: %s\n", found(len(contact.Phones) > 0))

	b.WriteString("\nINTELIGÊNCIA DE MERCADO:\n")
	if intel != nil && intel.RawIntelligence != "" {
		b.WriteString(intel.RawIntelligence)
	} else {
		b.WriteString("Dados limitados de pequena empresa\n")
	}

	if intel != nil {
		fmt.Fprintf(&b, "\nScore de Oportunidade: %d/100\n", intel.Insights.OpportunityScore)
		fmt.Fprintf(&b, "Problemas Encontrados: %d\n", intel.Insights.KeyPainPoints)
		fmt.Fprintf(&b, "Sinais de Expansão: %d\n", intel.Insights.ExpansionSignals)
	}

	b.WriteString(`
ANÁLISE PPVVC PARA PME:

1. PAIN (0-10):
   - PMEs têm dor aguda em violações (clientes menores = mais sensíveis)
   - Volume menor mas impacto proporcionalmente MAIOR
   - Se tem e-commerce = alta dor (7-9 pontos)
   - Se distribui produtos de valor = alta dor (7-8 pontos)

2. POWER (0-10): EM PME O POWER É DIFERENTE
   - Owner/CEO/Sócio = 10 pontos (decisão imediata!)
   - Diretor = 9 pontos (alta autonomia em PME)
   - Gerente = 7-8 pontos (mais poder que em grandes empresas)
   - Coordenador = 5-6 pontos (ainda tem voz em PME)

3. VISION (0-10): PME entende valor mais rápido
   - Owner/CEO = 9-10 (vê impacto no bottom line direto)
   - Gerente Ops/Log = 8-9 (sente dor no dia a dia)
   - Outros gerentes = 6-7

4. VALUE (0-10): ROI é MELHOR em PME
   - 50-200 funcionários = 7-9 (sweet spot)
   - 200-500 funcionários = 6-8 (bom volume)
   - <50 funcionários = 4-6 (volume baixo mas implementação rápida)
   - E-commerce ativo = +2 pontos (necessidade crítica)

5. CONTROL (0-10): URGÊNCIA em PME
   - Problemas severos = 9-10 (menos recursos para remediar)
   - Crescimento rápido = 8-9 (precisa estruturar AGORA)
   - Competindo com grandes = 7-8 (precisa se diferenciar)

6. COMPRAS (0-10 invertido): GRANDE VANTAGEM PME
   - <100 funcionários = 9-10 (decisão em 1-2 reuniões)
   - 100-300 funcionários = 7-9 (processo simples)
   - >300 funcionários = 5-7 (mais estruturado mas ainda ágil)
   - Owner direto = 10 (fecha na hora!)

RESPOSTA APENAS EM JSON:
{
  "scores": {
    "pain": <0-10>,
    "power": <0-10>,
    "vision": <0-10>,
    "value": <0-10>,
    "control": <0-10>,
    "compras": <0-10>
  },
  "total_score": <média das seis dimensões>,
  "priority": "HOT|WARM|COLD",
  "justification": "Justificativa específica para PME",
  "approach": "Abordagem direta para owner/decisor PME",
  "estimated_boxes_day": <número realista para PME>,
  "key_hook": "Gancho principal (foco em ROI direto e rapidez)",
  "first_message": "Mensagem de WhatsApp/email direta e sem enrolação",
  "objection_handling": "Principal objeção PME e resposta",
  "next_steps": ["Ação 1", "Ação 2", "Ação 3"],
  "pme_advantages": ["Vantagem 1 específica PME", "Vantagem 2"],
  "estimated_close_time": "Tempo estimado para fechar (ex: 2-3 semanas)"
}`)

	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func available(v bool) string {
	if v {
		return "DISPONÍVEL"
	}
	return "NÃO DISPONÍVEL"
}

func found(v bool) string {
	if v {
		return "DISPONÍVEL"
	}
	return "NÃO ENCONTRADO"
}
